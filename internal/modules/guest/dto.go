package guest

type CreateGuestRequest struct {
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	Email          string `json:"email"`
	DocumentNumber string `json:"document_number"`
	DocumentType   int    `json:"document_type"`
}
