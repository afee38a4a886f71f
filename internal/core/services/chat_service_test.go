package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/repositories"
	"github.com/sreejapuram0307/sherising/internal/core/domain"
)

func TestChatSendAndConversation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewChatService(repositories.NewChatRepository(db), repositories.NewUserRepository(db))

	alice := createTestUser(t, db, "Alice Direct", domain.RoleEntrepreneur)
	bob := createTestUser(t, db, "Bob Direct", domain.RoleInvestor)

	first, err := svc.Send(context.Background(), alice.ID, SendMessageRequest{ReceiverID: bob.ID, Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "Alice Direct", first.SenderName)
	assert.Equal(t, "Bob Direct", first.ReceiverName)

	_, err = svc.Send(context.Background(), bob.ID, SendMessageRequest{ReceiverID: alice.ID, Message: "hi back"})
	require.NoError(t, err)

	// Both directions, oldest first, for either participant
	conv, err := svc.Conversation(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, conv, 2)
	assert.Equal(t, "hello", conv[0].Message)
	assert.Equal(t, "hi back", conv[1].Message)

	convB, err := svc.Conversation(context.Background(), bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Len(t, convB, 2)
}

func TestChatSendValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewChatService(repositories.NewChatRepository(db), repositories.NewUserRepository(db))

	alice := createTestUser(t, db, "Alice Valid", domain.RoleEntrepreneur)
	bob := createTestUser(t, db, "Bob Valid", domain.RoleInvestor)

	_, err := svc.Send(context.Background(), alice.ID, SendMessageRequest{ReceiverID: bob.ID, Message: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Send(context.Background(), alice.ID, SendMessageRequest{ReceiverID: alice.ID, Message: "self"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Send(context.Background(), alice.ID, SendMessageRequest{ReceiverID: 9999, Message: "ghost"})
	assert.ErrorIs(t, err, domain.ErrReceiverNotFound)
}

func TestChatContactsExcludesSelf(t *testing.T) {
	db := setupTestDB(t)
	svc := NewChatService(repositories.NewChatRepository(db), repositories.NewUserRepository(db))

	alice := createTestUser(t, db, "Alice Contact", domain.RoleEntrepreneur)
	createTestUser(t, db, "Bob Contact", domain.RoleInvestor)
	createTestUser(t, db, "Carol Contact", domain.RoleMentor)

	contacts, err := svc.Contacts(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	for _, contact := range contacts {
		assert.NotEqual(t, alice.ID, contact.ID)
	}
}
