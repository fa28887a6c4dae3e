package helper

import (
	"github.com/go-playground/validator/v10"
)

// Validator instance dipakai bersama oleh semua DTO
var Validate = validator.New()

// MapValidationErrors mengubah error validator.v10 menjadi map field → pesan,
// supaya respon 422 selalu menyebut field mana yang gagal.
func MapValidationErrors(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["body"] = append(out["body"], err.Error())
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = field + " wajib diisi."
		case "email":
			msg = "Format email tidak valid."
		case "min":
			msg = field + " minimal " + fe.Param() + "."
		case "max":
			msg = field + " maksimal " + fe.Param() + "."
		case "gte":
			msg = field + " harus >= " + fe.Param() + "."
		case "lte":
			msg = field + " harus <= " + fe.Param() + "."
		case "oneof":
			msg = field + " harus salah satu dari: " + fe.Param() + "."
		case "uuid":
			msg = field + " harus UUID yang valid."
		case "url":
			msg = field + " harus URL yang valid."
		default:
			msg = field + " tidak valid (" + fe.Tag() + ")."
		}
		out[field] = append(out[field], msg)
	}
	return out
}
