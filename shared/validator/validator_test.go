package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"gomoto/shared/failure"
	"gomoto/shared/validator"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Name     string `json:"name"      validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Age      int    `json:"age"       validate:"gte=0,lte=120"`
	Category string `json:"category"  validate:"oneof=user admin guest"`
	Phone    string `json:"phone"     validate:"omitempty,e164"`
	Password string `json:"password"  validate:"omitempty,min=8"`
	Previous string `json:"previous"  validate:"omitempty,nefield=Password"`
	Birthday string `json:"birthday"  validate:"omitempty,datetime=2006-01-02"`
	Internal string `json:"-"         validate:"omitempty,alphanum"`
	NoTag    string `validate:"omitempty,uuid"`
}

type upload struct {
	Image  *multipart.FileHeader `json:"image"  validate:"required,mimetypes=image/png image/jpeg,maxfilesize=1"`
	Avatar string                `json:"avatar" validate:"omitempty,mimetypes=image/png"`
}

func validSignup() signup {
	return signup{Name: "Rider", Email: "rider@gomoto.test", Age: 30, Category: "user"}
}

func fileOf(contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)

	return &multipart.FileHeader{Filename: "photo", Header: header, Size: size}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *signup)
		wantMsg string
	}{
		{
			name:   "valid struct",
			mutate: func(*signup) {},
		},
		{
			name:    "missing required field uses json name",
			mutate:  func(s *signup) { s.Name = "" },
			wantMsg: "name is required",
		},
		{
			name:    "invalid email",
			mutate:  func(s *signup) { s.Email = "invalid-email" },
			wantMsg: "email must be a valid email address",
		},
		{
			name:    "age out of range",
			mutate:  func(s *signup) { s.Age = 150 },
			wantMsg: "age must be less than or equal to 120",
		},
		{
			name:    "invalid category",
			mutate:  func(s *signup) { s.Category = "invalid" },
			wantMsg: "category must be one of user admin guest",
		},
		{
			name:    "phone not e164",
			mutate:  func(s *signup) { s.Phone = "0812-345" },
			wantMsg: "phone must be a phone number in E.164 format",
		},
		{
			name:    "short password",
			mutate:  func(s *signup) { s.Password = "short" },
			wantMsg: "password must be at least 8",
		},
		{
			name: "same previous password",
			mutate: func(s *signup) {
				s.Password = "password123"
				s.Previous = "password123"
			},
			wantMsg: "previous must differ from Password",
		},
		{
			name:    "malformed date",
			mutate:  func(s *signup) { s.Birthday = "31/01/1990" },
			wantMsg: "birthday must match the format 2006-01-02",
		},
		{
			name:    "field without json tag keeps go name",
			mutate:  func(s *signup) { s.NoTag = "nope" },
			wantMsg: "NoTag must be a valid UUID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validSignup()
			tt.mutate(&data)

			err := validator.ValidateStruct(&data)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateStruct_Files(t *testing.T) {
	tests := []struct {
		name    string
		data    upload
		wantMsg string
	}{
		{
			name: "png within limit",
			data: upload{Image: fileOf("image/png", 512*1024)},
		},
		{
			name:    "missing file",
			data:    upload{},
			wantMsg: "image is required",
		},
		{
			name:    "disallowed content type",
			data:    upload{Image: fileOf("application/pdf", 1024)},
			wantMsg: "image must be one of image/png image/jpeg",
		},
		{
			name:    "file too large",
			data:    upload{Image: fileOf("image/jpeg", 2*1024*1024)},
			wantMsg: "image must not exceed 1 MB",
		},
		{
			name: "base64 data uri",
			data: upload{Image: fileOf("image/png", 10), Avatar: "data:image/png;base64,iVBORw0KGgo="},
		},
		{
			name:    "base64 with wrong type",
			data:    upload{Image: fileOf("image/png", 10), Avatar: "data:text/plain;base64,SGVsbG8="},
			wantMsg: "avatar must be one of image/png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr bool
	}{
		{name: "valid required string", field: "test", tag: "required"},
		{name: "empty required string", field: "", tag: "required", wantErr: true},
		{name: "valid uuid", field: "0b9f1d2e-8c4b-4f4e-9a57-3f0f4b8a9c10", tag: "uuid"},
		{name: "invalid uuid", field: "booking-1", tag: "uuid", wantErr: true},
		{name: "number in range", field: 25, tag: "gte=0,lte=100"},
		{name: "number out of range", field: 150, tag: "gte=0,lte=100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		jsonBody string
		wantErr  bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"name":"Rider","email":"rider@gomoto.test","age":25,"category":"user"}`,
		},
		{
			name:     "failing rule",
			jsonBody: `{"name":"Rider","email":"invalid-email","age":25,"category":"user"}`,
			wantErr:  true,
		},
		{
			name:     "malformed JSON",
			jsonBody: `{"name":"Rider","email":}`,
			wantErr:  true,
		},
		{
			name:     "empty object",
			jsonBody: `{}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data signup

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}
