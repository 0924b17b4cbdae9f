package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContactStartsUnread(t *testing.T) {
	contact := NewContact(ContactCreate{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Hi there",
	})

	require.NotEmpty(t, contact.ID)
	assert.False(t, contact.Read)
	assert.False(t, contact.CreatedAt.IsZero())
}

func TestContactTimestampSerializesAsISO8601(t *testing.T) {
	contact := NewContact(ContactCreate{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Hi there",
	})

	data, err := json.Marshal(contact)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	createdAt, ok := decoded["created_at"].(string)
	require.True(t, ok)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`, createdAt)
}
