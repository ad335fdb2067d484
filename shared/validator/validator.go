package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"gomoto/shared/base64"
	"gomoto/shared/constant"
	"gomoto/shared/failure"

	val "github.com/go-playground/validator/v10"
)

const bytesPerMegabyte = 1024 * 1024

var validate *val.Validate

func fileHeader(field val.FieldLevel) (multipart.FileHeader, bool) {
	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		return file, true
	case *multipart.FileHeader:
		if file != nil {
			return *file, true
		}
	}

	return multipart.FileHeader{}, false
}

// validateMimetype accepts an uploaded file header or a base64 data URI.
func validateMimetype(field val.FieldLevel) bool {
	var contentType string

	if file, ok := fileHeader(field); ok {
		contentType = file.Header.Get(constant.RequestHeaderContentType)
	} else if str, ok := field.Field().Interface().(string); ok {
		contentType = base64.GetContentType(str)
	}

	if contentType == "" {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), contentType)
}

// validateFileSize takes the limit in megabytes.
func validateFileSize(field val.FieldLevel) bool {
	var fileSize int64

	if file, ok := fileHeader(field); ok {
		fileSize = file.Size
	} else if str, ok := field.Field().Interface().(string); ok {
		fileSize = base64.DecodedSize(str)
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return float64(fileSize) <= maxSizeMB*bytesPerMegabyte
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return constant.Empty
	case "":
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	if err := validate.RegisterValidation("mimetypes", validateMimetype); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("maxfilesize", validateFileSize); err != nil {
		panic(err)
	}
}

// Validate decodes the JSON body into data and validates the result.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
