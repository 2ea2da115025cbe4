package room

import (
	"context"
	"testing"

	"hotelbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	if room != nil && args.Error(0) == nil {
		room.ID = 101
	}
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockBookingCounter struct {
	mock.Mock
}

func (m *MockBookingCounter) CountForRoom(ctx context.Context, roomID int64) (int64, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateRoom_Success(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockRooms.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRooms, new(MockBookingCounter))

	room, err := service.CreateRoom(context.Background(), CreateRoomRequest{
		Name: "101", Level: 1, PriceAmount: 100, PriceCurrency: "USD",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(101), room.ID)
	assert.Equal(t, "101", room.Name)
	assert.False(t, room.InMaintenance)
	mockRooms.AssertExpectations(t)
}

func TestCreateRoom_ValidationOrder(t *testing.T) {
	service := NewService(new(MockRoomRepository), new(MockBookingCounter))

	_, err := service.CreateRoom(context.Background(), CreateRoomRequest{Name: "", Level: 0, PriceAmount: 0})
	assert.ErrorIs(t, err, domain.ErrMissingRoomName)

	_, err = service.CreateRoom(context.Background(), CreateRoomRequest{Name: "101", Level: 0, PriceAmount: 0})
	assert.ErrorIs(t, err, domain.ErrMissingRoomLevel)

	_, err = service.CreateRoom(context.Background(), CreateRoomRequest{Name: "101", Level: 1, PriceAmount: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestUpdateRoom_NotFound(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockRooms.On("GetByID", mock.Anything, int64(9)).Return(nil, nil)

	service := NewService(mockRooms, new(MockBookingCounter))

	_, err := service.UpdateRoom(context.Background(), 9, UpdateRoomRequest{Name: "new"})
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestUpdateRoom_PartialUpdateKeepsZeroFields(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	existing := &domain.Room{ID: 1, Name: "101", Level: 1, Price: domain.Price{Amount: 100, Currency: "USD"}}
	mockRooms.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	mockRooms.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRooms, new(MockBookingCounter))

	// Only the maintenance flag is sent; name, level and price stay put.
	room, err := service.UpdateRoom(context.Background(), 1, UpdateRoomRequest{InMaintenance: true})

	assert.NoError(t, err)
	assert.Equal(t, "101", room.Name)
	assert.Equal(t, 1, room.Level)
	assert.Equal(t, 100.0, room.Price.Amount)
	assert.Equal(t, "USD", room.Price.Currency)
	assert.True(t, room.InMaintenance)
}

func TestUpdateRoom_AppliesNewValues(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	existing := &domain.Room{ID: 1, Name: "101", Level: 1, Price: domain.Price{Amount: 100, Currency: "USD"}, InMaintenance: true}
	mockRooms.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	mockRooms.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRooms, new(MockBookingCounter))

	room, err := service.UpdateRoom(context.Background(), 1, UpdateRoomRequest{
		Name: "101-deluxe", Level: 2, PriceAmount: 180, PriceCurrency: "EUR",
	})

	assert.NoError(t, err)
	assert.Equal(t, "101-deluxe", room.Name)
	assert.Equal(t, 2, room.Level)
	assert.Equal(t, 180.0, room.Price.Amount)
	assert.Equal(t, "EUR", room.Price.Currency)
	assert.False(t, room.InMaintenance, "maintenance flag is always overwritten")
}

func TestDeleteRoom_BlockedByBookings(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockCounter := new(MockBookingCounter)

	mockRooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1, Name: "101", Level: 1, Price: domain.Price{Amount: 100}}, nil)
	mockCounter.On("CountForRoom", mock.Anything, int64(1)).Return(int64(2), nil)

	service := NewService(mockRooms, mockCounter)

	err := service.DeleteRoom(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrCannotDeleteRoomWithBookings)
	mockRooms.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteRoom_Success(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockCounter := new(MockBookingCounter)

	mockRooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1, Name: "101", Level: 1, Price: domain.Price{Amount: 100}}, nil)
	mockCounter.On("CountForRoom", mock.Anything, int64(1)).Return(int64(0), nil)
	mockRooms.On("Delete", mock.Anything, int64(1)).Return(true, nil)

	service := NewService(mockRooms, mockCounter)

	assert.NoError(t, service.DeleteRoom(context.Background(), 1))
	mockRooms.AssertExpectations(t)
}

func TestDeleteRoom_NotFound(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockRooms.On("GetByID", mock.Anything, int64(9)).Return(nil, nil)

	service := NewService(mockRooms, new(MockBookingCounter))

	assert.ErrorIs(t, service.DeleteRoom(context.Background(), 9), domain.ErrRoomNotFound)
}
