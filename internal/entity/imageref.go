package entity

import (
	"database/sql/driver"
	"fmt"
)

// ImageRef is the stored form of an image, kept in a BYTEA column. What
// the bytes mean depends on the configured backend: the encoded payload
// itself (inline), a filename in the uploads directory (file), or the
// raw decoded image bytes (binary).
type ImageRef []byte

func (r ImageRef) IsZero() bool {
	return len(r) == 0
}

func (r ImageRef) String() string {
	return string(r)
}

func (r ImageRef) Value() (driver.Value, error) {
	if len(r) == 0 {
		return nil, nil
	}
	return []byte(r), nil
}

func (r *ImageRef) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		buf := make([]byte, len(v))
		copy(buf, v)
		*r = buf
	case string:
		*r = ImageRef(v)
	default:
		return fmt.Errorf("cannot scan type %T into ImageRef", value)
	}
	return nil
}
