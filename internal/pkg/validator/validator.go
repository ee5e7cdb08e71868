package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// InvalidFields возвращает имена полей, не прошедших валидацию.
// Ошибка другого типа (например, не структура) возвращается как есть.
func InvalidFields(s interface{}) ([]string, error) {
	err := validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.StructField())
	}
	return fields, nil
}
