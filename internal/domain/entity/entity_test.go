package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserType_IsValid(t *testing.T) {
	assert.True(t, UserTypeCustomer.IsValid())
	assert.True(t, UserTypeAdmin.IsValid())
	assert.False(t, UserType("SUPERUSER").IsValid())
	assert.False(t, UserType("").IsValid())
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	session := Session{ExpiresAt: now.Add(time.Hour)}

	assert.False(t, session.Expired(now))
	assert.True(t, session.Expired(now.Add(time.Hour)))
	assert.True(t, session.Expired(now.Add(2*time.Hour)))
}
