package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Константы валидации
const (
	MinInquiryNameLength    = 2
	MaxInquiryNameLength    = 100
	MaxInquiryMessageLength = 5000
	MinPhoneLength          = 7
	MaxPhoneLength          = 50
	MaxEmailLength          = 200
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^[0-9+\-() ]+$`)
)

// ValidateLength проверяет длину строки в символах.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateInquiryName проверяет имя в заявке.
func ValidateInquiryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("имя обязательно")
	}
	return ValidateLength("имя", name, MinInquiryNameLength, MaxInquiryNameLength)
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return fmt.Errorf("email должен быть не более %d символов", MaxEmailLength)
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("некорректный email")
	}
	return nil
}

// ValidatePhone проверяет телефон: цифры, плюс, дефисы, скобки и пробелы.
func ValidatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return fmt.Errorf("телефон обязателен")
	}
	if err := ValidateLength("телефон", phone, MinPhoneLength, MaxPhoneLength); err != nil {
		return err
	}
	if !phoneRe.MatchString(phone) {
		return fmt.Errorf("некорректный телефон")
	}
	return nil
}

// ValidateInquiryMessage проверяет необязательное сообщение заявки.
func ValidateInquiryMessage(message *string) error {
	if message == nil {
		return nil
	}
	return ValidateLength("сообщение", *message, 0, MaxInquiryMessageLength)
}
