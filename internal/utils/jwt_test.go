package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/golang-jwt/jwt/v5"
)

var testSignKey = []byte("0123456789abcdef0123456789abcdef")

func TestGenerateDownloadToken_Success(t *testing.T) {
	token, err := GenerateDownloadToken("qr-studio", "cs_test_1", models.ProductPrint, time.Hour, testSignKey)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.SessionID() != "cs_test_1" {
		t.Errorf("expected subject cs_test_1, got %s", token.SessionID())
	}
	if token.Product != models.ProductPrint {
		t.Errorf("expected product print, got %s", token.Product)
	}
}

func TestGenerateDownloadToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		sessionID string
		duration  time.Duration
		key       []byte
	}{
		{"empty issuer", "", "cs", time.Hour, testSignKey},
		{"empty session", "iss", "", time.Hour, testSignKey},
		{"zero duration", "iss", "cs", 0, testSignKey},
		{"empty key", "iss", "cs", time.Hour, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateDownloadToken(tt.issuer, tt.sessionID, models.ProductDigital, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateDownloadToken_Success(t *testing.T) {
	issued, err := GenerateDownloadToken("qr-studio", "cs_test_2", models.ProductDigital, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	token, err := ValidateDownloadToken(issued.SignedString, testSignKey, "qr-studio")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SessionID() != "cs_test_2" {
		t.Errorf("expected session cs_test_2, got %s", token.SessionID())
	}
	if token.Product != models.ProductDigital {
		t.Errorf("expected product digital, got %s", token.Product)
	}
	if token.String() != issued.SignedString {
		t.Error("expected String to return the raw token")
	}
}

func TestValidateDownloadToken_InvalidKey(t *testing.T) {
	issued, _ := GenerateDownloadToken("qr-studio", "cs", models.ProductDigital, time.Hour, testSignKey)

	_, err := ValidateDownloadToken(issued.SignedString, []byte("another-key"), "qr-studio")

	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateDownloadToken_Expired(t *testing.T) {
	issued, _ := GenerateDownloadToken("qr-studio", "cs", models.ProductDigital, time.Nanosecond, testSignKey)
	time.Sleep(1100 * time.Millisecond)

	_, err := ValidateDownloadToken(issued.SignedString, testSignKey, "qr-studio")

	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected expiry error, got %v", err)
	}
}

func TestValidateDownloadToken_WrongIssuer(t *testing.T) {
	issued, _ := GenerateDownloadToken("qr-studio", "cs", models.ProductDigital, time.Hour, testSignKey)

	_, err := ValidateDownloadToken(issued.SignedString, testSignKey, "someone-else")

	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Errorf("expected issuer error, got %v", err)
	}
}

func TestValidateDownloadToken_Malformed(t *testing.T) {
	if _, err := ValidateDownloadToken("not.a.token", testSignKey, "qr-studio"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def", "abc.def", false},
		{"bearer   abc", "abc", false},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: unexpected error state %v", tt.header, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.header, tt.want, got)
		}
	}
}
