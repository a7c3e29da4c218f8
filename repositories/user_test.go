package repositories

import (
	"chat-gate/domain"
	"chat-gate/errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_Create_User_And_Lookup(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openDB(t))
	alice := domain.NewUser("Alice", "alice@example.com", domain.RoleHost, time.Now().UTC())
	req.NoError(repository.CreateUser(alice))

	byID, err := repository.GetUser(alice.ID)
	req.NoError(err)
	req.Equal(alice, byID)

	byEmail, err := repository.GetUserByEmail("ALICE@example.com")
	req.NoError(err)
	req.Equal(alice, byEmail)
}

func Test_Create_User_Rejects_Duplicate_Email(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openDB(t))
	req.NoError(repository.CreateUser(domain.NewUser("Alice", "alice@example.com", "", time.Now().UTC())))

	err := repository.CreateUser(domain.NewUser("Other", "alice@example.com", "", time.Now().UTC()))
	req.ErrorIs(err, errors.ErrValidation)
	rejection, ok := errors.AsRejection(err)
	req.True(ok)
	req.Equal("email", rejection.Field)
}

func Test_Get_Users_Reports_Missing_Id(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openDB(t))
	alice := domain.NewUser("Alice", "alice@example.com", domain.RoleGuest, time.Now().UTC())
	req.NoError(repository.CreateUser(alice))
	missing := uuid.New()

	users, err := repository.GetUsers([]uuid.UUID{alice.ID})
	req.NoError(err)
	req.Equal([]domain.User{alice}, users)

	_, err = repository.GetUsers([]uuid.UUID{alice.ID, missing})
	req.ErrorIs(err, errors.ErrUserNotFound)
	req.ErrorContains(err, missing.String())

	_, err = repository.GetUserByEmail("nobody@example.com")
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func Test_Codec_Skips_Unknown_Fields(t *testing.T) {
	req := require.New(t)
	message := domain.Message{
		ID:             uuid.New(),
		ConversationID: uuid.New(),
		SenderID:       uuid.New(),
		Body:           "héllo",
		SentAt:         time.Unix(0, 1_700_000_000_123_456_789).UTC(),
		Seq:            42,
	}
	raw := appendString(encodeMessage(message), 99, "added later")

	decoded, err := decodeMessage(raw)
	req.NoError(err)
	req.Equal(message, decoded)

	_, err = decodeMessage([]byte{0xff})
	req.ErrorIs(err, errors.ErrInvalidRecord)
}
