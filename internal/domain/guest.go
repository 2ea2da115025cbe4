package domain

import "strings"

// DocumentType codes follow the legacy numbering.
type DocumentType int

const (
	DocumentPassport      DocumentType = 1
	DocumentNationalID    DocumentType = 2
	DocumentDriverLicence DocumentType = 3
)

const minDocumentNumberLen = 4

type Guest struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	Surname        string       `json:"surname"`
	Email          string       `json:"email"`
	DocumentNumber string       `json:"document_number"`
	DocumentType   DocumentType `json:"document_type"`
}

// Validate checks required fields first, then email shape, then the document
// number. Ordering matters: a guest with several problems reports the first.
func (g *Guest) Validate() error {
	if g.Name == "" || g.Surname == "" || g.Email == "" {
		return ErrMissingRequiredInformation
	}
	if !validEmail(g.Email) {
		return ErrInvalidEmail
	}
	if len(g.DocumentNumber) < minDocumentNumberLen {
		return ErrInvalidPersonID
	}
	return nil
}

// validEmail is deliberately loose: an "@" with a non-empty local part and a
// "." somewhere after it that is not the last character.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	dot := strings.LastIndex(email, ".")
	return dot > at+1 && dot < len(email)-1
}
