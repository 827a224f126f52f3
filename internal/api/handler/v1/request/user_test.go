package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  CreateUserRequest{Username: "sofie", DisplayName: "Sofie", Password: "geheim123", Role: "member"},
		},
		{
			name:    "password too short",
			req:     CreateUserRequest{Username: "sofie", DisplayName: "Sofie", Password: "abc1", Role: "member"},
			wantErr: true,
		},
		{
			name:    "password without a digit",
			req:     CreateUserRequest{Username: "sofie", DisplayName: "Sofie", Password: "geheimwoord", Role: "member"},
			wantErr: true,
		},
		{
			name:    "password without a letter",
			req:     CreateUserRequest{Username: "sofie", DisplayName: "Sofie", Password: "1234567890", Role: "member"},
			wantErr: true,
		},
		{
			name:    "unknown role",
			req:     CreateUserRequest{Username: "sofie", DisplayName: "Sofie", Password: "geheim123", Role: "boss"},
			wantErr: true,
		},
		{
			name:    "missing username",
			req:     CreateUserRequest{DisplayName: "Sofie", Password: "geheim123", Role: "member"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateUserRequest_Validate(t *testing.T) {
	password := "nieuw-wachtwoord"
	req := UpdateUserRequest{Password: &password}
	assert.Error(t, req.Validate())

	password = "nieuw-wachtwoord1"
	assert.NoError(t, req.Validate())
}
