package domain

import "strings"

// Prefecture identifies one of the 47 Japanese prefectures. Values are
// the romanized names; codes follow JIS X 0401 ordering.
type Prefecture string

const (
	Hokkaido  Prefecture = "hokkaido"
	Aomori    Prefecture = "aomori"
	Iwate     Prefecture = "iwate"
	Miyagi    Prefecture = "miyagi"
	Akita     Prefecture = "akita"
	Yamagata  Prefecture = "yamagata"
	Fukushima Prefecture = "fukushima"
	Ibaraki   Prefecture = "ibaraki"
	Tochigi   Prefecture = "tochigi"
	Gunma     Prefecture = "gunma"
	Saitama   Prefecture = "saitama"
	Chiba     Prefecture = "chiba"
	Tokyo     Prefecture = "tokyo"
	Kanagawa  Prefecture = "kanagawa"
	Niigata   Prefecture = "niigata"
	Toyama    Prefecture = "toyama"
	Ishikawa  Prefecture = "ishikawa"
	Fukui     Prefecture = "fukui"
	Yamanashi Prefecture = "yamanashi"
	Nagano    Prefecture = "nagano"
	Gifu      Prefecture = "gifu"
	Shizuoka  Prefecture = "shizuoka"
	Aichi     Prefecture = "aichi"
	Mie       Prefecture = "mie"
	Shiga     Prefecture = "shiga"
	Kyoto     Prefecture = "kyoto"
	Osaka     Prefecture = "osaka"
	Hyogo     Prefecture = "hyogo"
	Nara      Prefecture = "nara"
	Wakayama  Prefecture = "wakayama"
	Tottori   Prefecture = "tottori"
	Shimane   Prefecture = "shimane"
	Okayama   Prefecture = "okayama"
	Hiroshima Prefecture = "hiroshima"
	Yamaguchi Prefecture = "yamaguchi"
	Tokushima Prefecture = "tokushima"
	Kagawa    Prefecture = "kagawa"
	Ehime     Prefecture = "ehime"
	Kochi     Prefecture = "kochi"
	Fukuoka   Prefecture = "fukuoka"
	Saga      Prefecture = "saga"
	Nagasaki  Prefecture = "nagasaki"
	Kumamoto  Prefecture = "kumamoto"
	Oita      Prefecture = "oita"
	Miyazaki  Prefecture = "miyazaki"
	Kagoshima Prefecture = "kagoshima"
	Okinawa   Prefecture = "okinawa"
)

// prefectures lists all 47 prefectures in JIS X 0401 order, so the
// code of prefectures[i] is i+1.
var prefectures = []Prefecture{
	Hokkaido, Aomori, Iwate, Miyagi, Akita, Yamagata, Fukushima,
	Ibaraki, Tochigi, Gunma, Saitama, Chiba, Tokyo, Kanagawa,
	Niigata, Toyama, Ishikawa, Fukui, Yamanashi, Nagano,
	Gifu, Shizuoka, Aichi, Mie, Shiga, Kyoto, Osaka, Hyogo, Nara, Wakayama,
	Tottori, Shimane, Okayama, Hiroshima, Yamaguchi,
	Tokushima, Kagawa, Ehime, Kochi,
	Fukuoka, Saga, Nagasaki, Kumamoto, Oita, Miyazaki, Kagoshima, Okinawa,
}

var prefectureCodes = func() map[Prefecture]int {
	m := make(map[Prefecture]int, len(prefectures))
	for i, p := range prefectures {
		m[p] = i + 1
	}
	return m
}()

// AllPrefectures returns the 47 prefectures in JIS code order. The
// returned slice is a copy.
func AllPrefectures() []Prefecture {
	out := make([]Prefecture, len(prefectures))
	copy(out, prefectures)
	return out
}

// ParsePrefecture resolves a case-insensitive romanized prefecture name.
func ParsePrefecture(s string) (Prefecture, error) {
	p := Prefecture(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", &InvalidInputError{Field: "prefecture", Reason: "unknown prefecture: " + s}
	}
	return p, nil
}

// Valid reports whether p is one of the 47 prefectures.
func (p Prefecture) Valid() bool {
	_, ok := prefectureCodes[p]
	return ok
}

// Code returns the JIS X 0401 prefecture code (1-47), or 0 if invalid.
func (p Prefecture) Code() int { return prefectureCodes[p] }

func (p Prefecture) String() string { return string(p) }
