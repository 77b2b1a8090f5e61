package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

// asError unwrap một error về *common.Error, fail test nếu không phải.
func asError(t *testing.T, err error) *Error {
	t.Helper()
	var customErr *Error
	if !errors.As(err, &customErr) {
		t.Fatalf("muốn *common.Error, có %T", err)
	}
	return customErr
}

func TestNewError_Fields(t *testing.T) {
	cause := errors.New("nguyên nhân gốc")
	err := asError(t, NewError(ErrCodeValidationInput, "sai dữ liệu", StatusBadRequest, cause))

	if err.Code.Code != ErrCodeValidationInput.Code {
		t.Errorf("Code = %v, muốn %v", err.Code.Code, ErrCodeValidationInput.Code)
	}
	if err.StatusCode != StatusBadRequest {
		t.Errorf("StatusCode = %d, muốn %d", err.StatusCode, StatusBadRequest)
	}
	if err.Error() == "" {
		t.Error("Error() không được rỗng")
	}
}

func TestErrorIs_MatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("ngữ cảnh thêm: %w", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("errors.Is phải nhận ra sentinel qua wrap")
	}
}

func TestConvertMongoError_NoDocuments(t *testing.T) {
	customErr := asError(t, ConvertMongoError(mongo.ErrNoDocuments))
	if customErr.StatusCode != StatusNotFound {
		t.Errorf("ErrNoDocuments phải map sang 404, có %d", customErr.StatusCode)
	}
}

func TestConvertMongoError_PassthroughDomainError(t *testing.T) {
	err := ConvertMongoError(ErrInvalidTransition)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Error("lỗi domain đi qua ConvertMongoError phải được giữ nguyên")
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if ConvertMongoError(nil) != nil {
		t.Error("ConvertMongoError(nil) phải trả về nil")
	}
}

func TestSentinelStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"ErrNotFound", ErrNotFound, StatusNotFound},
		{"ErrDuplicate", ErrDuplicate, StatusConflict},
		{"ErrInvalidInput", ErrInvalidInput, StatusBadRequest},
		{"ErrInvalidTransition", ErrInvalidTransition, StatusBadRequest},
		{"ErrConflict", ErrConflict, StatusConflict},
		{"ErrOrderCodeExhaust", ErrOrderCodeExhaust, StatusConflict},
		{"ErrTokenInvalid", ErrTokenInvalid, StatusUnauthorized},
		{"ErrInvalidCredentials", ErrInvalidCredentials, StatusUnauthorized},
		{"ErrOtpInvalid", ErrOtpInvalid, StatusUnauthorized},
	}
	for _, tc := range cases {
		customErr := asError(t, tc.err)
		if customErr.StatusCode != tc.want {
			t.Errorf("%s.StatusCode = %d, muốn %d", tc.name, customErr.StatusCode, tc.want)
		}
	}
}

func TestTransitionAndConflictCodes(t *testing.T) {
	if asError(t, ErrInvalidTransition).Code.Code != "BIZ_003" {
		t.Errorf("mã lỗi chuyển trạng thái = %s, muốn BIZ_003", asError(t, ErrInvalidTransition).Code.Code)
	}
	if asError(t, ErrConflict).Code.Code != "BIZ_004" {
		t.Errorf("mã lỗi xung đột = %s, muốn BIZ_004", asError(t, ErrConflict).Code.Code)
	}
}
