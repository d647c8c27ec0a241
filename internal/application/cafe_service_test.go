package application_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/cafehub/internal/application"
	"github.com/oksasatya/cafehub/internal/domain/entity"
	repo "github.com/oksasatya/cafehub/internal/domain/repository"
	"github.com/oksasatya/cafehub/internal/domain/repository/mocks"
)

func newTestCafeService(cafes *mocks.CafeRepository, comments *mocks.CommentRepository) *application.CafeService {
	return application.NewCafeService(cafes, comments, nil, "", nil, "", nil)
}

func TestCreateCafe(t *testing.T) {
	cafes := new(mocks.CafeRepository)
	cafes.On("Create", mock.Anything, mock.AnythingOfType("*entity.Cafe")).
		Run(func(args mock.Arguments) {
			c := args.Get(1).(*entity.Cafe)
			c.ID = 1
			c.CreatedAt = time.Now()
		}).
		Return(nil)

	svc := newTestCafeService(cafes, new(mocks.CommentRepository))
	cafe, err := svc.CreateCafe(context.Background(), application.CreateCafeInput{
		Name:        "  Blue Cup  ",
		City:        "Lisbon",
		Address:     "Rua Augusta 1",
		HasWiFi:     entity.AmenityYes,
		HasSockets:  entity.AmenityNo,
		Seats:       "20-30",
		CoffeePrice: "€2.50",
		Description: "quiet corner place",
	}, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(1), cafe.ID)
	assert.Equal(t, "Blue Cup", cafe.Name)
	assert.Equal(t, int64(2), cafe.OwnerID)
	assert.Equal(t, entity.AmenityYes, cafe.HasWiFi)
	assert.Equal(t, entity.AmenityUnknown, cafe.HasToilet)
}

func TestCreateCafe_DuplicateName(t *testing.T) {
	cafes := new(mocks.CafeRepository)
	cafes.On("Create", mock.Anything, mock.Anything).Return(repo.ErrDuplicate)

	svc := newTestCafeService(cafes, new(mocks.CommentRepository))
	_, err := svc.CreateCafe(context.Background(), application.CreateCafeInput{Name: "Blue Cup"}, 2)
	assert.ErrorIs(t, err, application.ErrDuplicateName)
}

func TestGetCafe_NotFound(t *testing.T) {
	cafes := new(mocks.CafeRepository)
	cafes.On("GetByID", mock.Anything, int64(99)).Return(nil, repo.ErrNotFound)

	svc := newTestCafeService(cafes, new(mocks.CommentRepository))
	_, err := svc.GetCafe(context.Background(), 99)
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestDeleteCafe(t *testing.T) {
	cafes := new(mocks.CafeRepository)
	cafes.On("Delete", mock.Anything, int64(1)).Return(nil)
	cafes.On("Delete", mock.Anything, int64(99)).Return(repo.ErrNotFound)

	svc := newTestCafeService(cafes, new(mocks.CommentRepository))
	assert.NoError(t, svc.DeleteCafe(context.Background(), 1))
	assert.ErrorIs(t, svc.DeleteCafe(context.Background(), 99), application.ErrNotFound)
}

func TestAddComment(t *testing.T) {
	comments := new(mocks.CommentRepository)
	comments.On("Create", mock.Anything, mock.AnythingOfType("*entity.Comment")).
		Run(func(args mock.Arguments) {
			c := args.Get(1).(*entity.Comment)
			c.ID = 1
			c.CreatedAt = time.Now()
		}).
		Return(nil)

	svc := newTestCafeService(new(mocks.CafeRepository), comments)
	c, err := svc.AddComment(context.Background(), 1, " great wifi ", 2)
	require.NoError(t, err)

	assert.Equal(t, "great wifi", c.Body)
	assert.Equal(t, int64(1), c.CafeID)
	assert.Equal(t, int64(2), c.OwnerID)
}

func TestAddComment_MissingCafe(t *testing.T) {
	comments := new(mocks.CommentRepository)
	comments.On("Create", mock.Anything, mock.Anything).Return(repo.ErrMissingReference)

	svc := newTestCafeService(new(mocks.CafeRepository), comments)
	_, err := svc.AddComment(context.Background(), 99, "ghost cafe", 2)
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestUploadPhoto_RejectsUnknownExtension(t *testing.T) {
	svc := newTestCafeService(new(mocks.CafeRepository), new(mocks.CommentRepository))
	_, err := svc.UploadPhoto(context.Background(), strings.NewReader("x"), "shell.sh", "text/plain")
	assert.Error(t, err)
}

func TestSearchCafes_Unconfigured(t *testing.T) {
	svc := newTestCafeService(new(mocks.CafeRepository), new(mocks.CommentRepository))
	hits, err := svc.SearchCafes(context.Background(), "wifi", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
