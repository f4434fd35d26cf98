package validation

import (
	"net/mail"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	usernameRe  = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)
	groupCodeRe = regexp.MustCompile(`^[A-Z0-9]{6}$`)
)

const maxReasonLength = 255

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

func ValidateUsername(username string) bool {
	return usernameRe.MatchString(NormalizeUsername(username))
}

func PasswordMinLength() int {
	minStr := os.Getenv("PASSWORD_MIN_LENGTH")
	if minStr == "" {
		return 10
	}
	min, err := strconv.Atoi(minStr)
	if err != nil || min < 8 {
		return 10
	}
	return min
}

func ValidatePassword(password string) bool {
	return len(password) >= PasswordMinLength()
}

func NormalizeGroupName(name string) string {
	return strings.TrimSpace(name)
}

func ValidateGroupName(name string) bool {
	name = NormalizeGroupName(name)
	return name != "" && len(name) <= 100
}

// NormalizeGroupCode uppercases the code so lookups are
// case-insensitive for the caller.
func NormalizeGroupCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func ValidateGroupCode(code string) bool {
	return groupCodeRe.MatchString(NormalizeGroupCode(code))
}

func ValidateReason(reason string) bool {
	return len(reason) <= maxReasonLength
}
