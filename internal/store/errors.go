// internal/store/errors.go
package store

import (
	"errors"
	"fmt"
)

// Sentinel errors của tầng store. Handlers ánh xạ chúng thành mã HTTP.
var (
	// ErrNotFound: id hoặc khóa không tồn tại.
	ErrNotFound = errors.New("record not found")
	// ErrConflict: vi phạm khóa duy nhất (tracking number, license number, email).
	ErrConflict = errors.New("unique key already exists")
	// ErrAlreadyAssigned: shipment đã có delivery, không thể phân công lần nữa.
	ErrAlreadyAssigned = errors.New("shipment is already assigned to a delivery")
)

// ValidationError là dữ liệu đầu vào không thỏa điều kiện tiên quyết.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError bọc một lỗi persistence bên dưới (nguyên nhân không minh bạch
// với caller).
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
