package usecase

import "regexp"

// 厳密なRFC検証はしない。雑な入力を弾ければ十分。
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func IsEmailLike(s string) bool {
	return emailRe.MatchString(s)
}
