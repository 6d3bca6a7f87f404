// internal/phone/phone.go
package phone

import (
    "net/url"
    "strconv"
    "strings"
)

// DefaultCountryPrefix is applied when building dial forms for local numbers.
const DefaultCountryPrefix = "880"

// Canonicalize reduces a raw phone cell to its digits-only storage key.
// Spreadsheet exports sometimes render long numbers in scientific notation
// ("1.23E+10"); those are re-read as a float and truncated to an integer
// string before the digit strip. No country inference happens here.
func Canonicalize(raw string) string {
    s := strings.TrimSpace(raw)
    if strings.ContainsAny(s, "Ee") {
        if v, err := strconv.ParseFloat(s, 64); err == nil {
            s = strconv.FormatInt(int64(v), 10)
        }
    }
    digits := make([]byte, 0, len(s))
    for i := 0; i < len(s); i++ {
        if s[i] >= '0' && s[i] <= '9' {
            digits = append(digits, s[i])
        }
    }
    return string(digits)
}

// ToDialable turns a canonical digits-only number into a dial-ready
// international form. Rules are checked in order:
//  1. 11 digits starting with 0 -> local mobile, swap the 0 for the prefix
//  2. 10 digits starting with 1 -> bare local mobile, prepend the prefix
//  3. anything else is assumed to already carry a country code
func ToDialable(digits, countryPrefix string) string {
    if countryPrefix == "" {
        countryPrefix = DefaultCountryPrefix
    }
    switch {
    case len(digits) == 11 && digits[0] == '0':
        return countryPrefix + digits[1:]
    case len(digits) == 10 && digits[0] == '1':
        return countryPrefix + digits
    default:
        return digits
    }
}

// WhatsAppLink builds a wa.me deep link. The dial form is computed fresh at
// every call site; nothing caches it on the contact record.
func WhatsAppLink(digits, message string) string {
    link := "https://wa.me/" + ToDialable(digits, "")
    if message != "" {
        link += "?text=" + url.QueryEscape(message)
    }
    return link
}

// TelLink builds a telephony URI.
func TelLink(digits string) string {
    return "tel:" + ToDialable(digits, "")
}

// SMSLink builds an sms: URI with an optional prefilled body.
func SMSLink(digits, message string) string {
    link := "sms:" + ToDialable(digits, "")
    if message != "" {
        link += "?body=" + url.QueryEscape(message)
    }
    return link
}

// ActionLink picks the deep link for an outbound channel.
func ActionLink(channel, digits, message string) string {
    switch channel {
    case "whatsapp":
        return WhatsAppLink(digits, message)
    case "sms":
        return SMSLink(digits, message)
    default:
        return TelLink(digits)
    }
}
