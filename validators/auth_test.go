package validators

import (
	"testing"
)

func TestValidateRegisterRequest_Rules(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{
			name:    "valid",
			req:     RegisterRequest{Email: "a@b.com", Password: "secret1", Nickname: "Al"},
			wantErr: false,
		},
		{
			name:    "six char password is the floor",
			req:     RegisterRequest{Email: "a@b.com", Password: "secret", Nickname: "Al"},
			wantErr: false,
		},
		{
			name:    "password too short",
			req:     RegisterRequest{Email: "a@b.com", Password: "five5", Nickname: "Al"},
			wantErr: true,
		},
		{
			name:    "bad email",
			req:     RegisterRequest{Email: "not-an-email", Password: "secret1", Nickname: "Al"},
			wantErr: true,
		},
		{
			name:    "missing email",
			req:     RegisterRequest{Password: "secret1", Nickname: "Al"},
			wantErr: true,
		},
		{
			name:    "nickname too short",
			req:     RegisterRequest{Email: "a@b.com", Password: "secret1", Nickname: "A"},
			wantErr: true,
		},
		{
			name:    "missing nickname",
			req:     RegisterRequest{Email: "a@b.com", Password: "secret1"},
			wantErr: true,
		},
		{
			name: "mixed case not required",
			req:  RegisterRequest{Email: "a@b.com", Password: "alllowercase1", Nickname: "Al"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.req)
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("Validate() errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateLoginRequest_Rules(t *testing.T) {
	tests := []struct {
		name    string
		req     LoginRequest
		wantErr bool
	}{
		{name: "valid", req: LoginRequest{Email: "a@b.com", Password: "secret1"}},
		{name: "missing password", req: LoginRequest{Email: "a@b.com"}, wantErr: true},
		{name: "bad email", req: LoginRequest{Email: "nope", Password: "secret1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.req)
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("Validate() errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateGenerateImageRequest_Rules(t *testing.T) {
	if errs := Validate(GenerateImageRequest{Prompt: "a cat"}); len(errs) > 0 {
		t.Errorf("Validate() errors = %v for a valid request", errs)
	}
	if errs := Validate(GenerateImageRequest{Model: "dall-e-3"}); len(errs) == 0 {
		t.Error("Validate() accepted a missing prompt")
	}
}
