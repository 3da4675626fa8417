package normalizer

import "bookstats/pkg/utils"

// PhoneDigits is the width of the canonical national number.
const PhoneDigits = 10

var phoneText = utils.NewStringHelper()

// NormalizePhone reduces raw to its digits, right-pads with '0' or truncates to
// PhoneDigits and formats the result as AAA-BBB-CCCC.
//
// The result is always syntactically valid; malformed input yields a
// well-formed but meaningless number.
func NormalizePhone(raw string) string {
	digits := phoneText.FitWidth(phoneText.Digits(raw), PhoneDigits, '0')

	return digits[0:3] + "-" + digits[3:6] + "-" + digits[6:10]
}
