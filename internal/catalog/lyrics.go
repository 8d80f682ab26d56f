package catalog

import "slices"

// SelectLyrics picks one lyric text out of the upstream variants and
// derives the source script/language tags. Each locale branch stamps
// script/language from its Original variant, so when both locales carry
// an Original the later one wins; the text choice follows the caller's
// language preference, with later variants overriding earlier matches.
func SelectLyrics(variants []APILyrics, pref LanguagePreference, translatedAllowed bool) (script, language, text string) {
	for _, v := range variants {
		switch {
		case slices.Contains(v.CultureCodes, "en"):
			if v.TranslationType == TranslationOriginal {
				script = "Latn"
				language = "eng"
			}
			if translatedAllowed || pref == LangEnglish {
				text = v.Value
			}
		case slices.Contains(v.CultureCodes, "ja"):
			if v.TranslationType == TranslationOriginal {
				script = "Jpan"
				language = "jpn"
			}
			if !translatedAllowed && pref == LangJapanese {
				text = v.Value
			}
		default:
			if pref == LangRomaji && v.TranslationType == TranslationRomanized {
				text = v.Value
			}
		}
	}
	if text == "" && len(variants) > 0 {
		text = fallbackLyrics(variants, pref)
	}
	return script, language, text
}

// fallbackLyrics picks a variant when nothing matched the preference
// directly. An English preference degrades to Romaji before giving up.
func fallbackLyrics(variants []APILyrics, pref LanguagePreference) string {
	switch pref {
	case LangEnglish:
		for _, v := range variants {
			if slices.Contains(v.CultureCodes, "en") {
				return v.Value
			}
		}
		return fallbackLyrics(variants, LangRomaji)
	case LangRomaji:
		for _, v := range variants {
			if v.TranslationType == TranslationRomanized {
				return v.Value
			}
		}
	case LangDefault:
		for _, v := range variants {
			if v.TranslationType == TranslationOriginal {
				return v.Value
			}
		}
	}
	return variants[0].Value
}
