package catalog

import "testing"

func TestSelectLyrics_PreferenceRouting(t *testing.T) {
	variants := []APILyrics{
		{TranslationType: "Translation", Value: "english text", CultureCodes: []string{"en"}},
		{TranslationType: "Original", Value: "japanese text", CultureCodes: []string{"ja"}},
		{TranslationType: "Romanized", Value: "romaji text", CultureCodes: []string{}},
	}

	tests := []struct {
		name       string
		pref       LanguagePreference
		translated bool
		wantText   string
	}{
		{"japanese", LangJapanese, false, "japanese text"},
		{"english", LangEnglish, false, "english text"},
		{"romaji", LangRomaji, false, "romaji text"},
		{"translated allowed wins over japanese", LangJapanese, true, "english text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, language, text := SelectLyrics(variants, tt.pref, tt.translated)
			// Script/language always describe the Original variant's locale.
			if script != "Jpan" || language != "jpn" {
				t.Errorf("Expected Jpan/jpn, got %s/%s", script, language)
			}
			if text != tt.wantText {
				t.Errorf("Expected text %q, got %q", tt.wantText, text)
			}
		})
	}
}

func TestSelectLyrics_EnglishOriginal(t *testing.T) {
	variants := []APILyrics{
		{TranslationType: "Original", Value: "english original", CultureCodes: []string{"en"}},
	}

	script, language, text := SelectLyrics(variants, LangJapanese, false)
	if script != "Latn" || language != "eng" {
		t.Errorf("Expected Latn/eng, got %s/%s", script, language)
	}
	// Nothing matched the Japanese preference; fallback lands on the only
	// variant.
	if text != "english original" {
		t.Errorf("Expected fallback to the only variant, got %q", text)
	}
}

func TestSelectLyrics_LaterOriginalOverridesScript(t *testing.T) {
	// Both locales carry an Original; the later one stamps script/language.
	variants := []APILyrics{
		{TranslationType: "Original", Value: "english original", CultureCodes: []string{"en"}},
		{TranslationType: "Original", Value: "japanese original", CultureCodes: []string{"ja"}},
	}

	script, language, text := SelectLyrics(variants, LangJapanese, false)
	if script != "Jpan" || language != "jpn" {
		t.Errorf("Expected Jpan/jpn from the later Original, got %s/%s", script, language)
	}
	if text != "japanese original" {
		t.Errorf("Expected text %q, got %q", "japanese original", text)
	}
}

func TestSelectLyrics_LastMatchWins(t *testing.T) {
	variants := []APILyrics{
		{TranslationType: "Original", Value: "first ja", CultureCodes: []string{"ja"}},
		{TranslationType: "Translation", Value: "second ja", CultureCodes: []string{"ja"}},
	}

	script, _, text := SelectLyrics(variants, LangJapanese, false)
	if text != "second ja" {
		t.Errorf("Expected later variant to win, got %q", text)
	}
	if script != "Jpan" {
		t.Errorf("Expected script from the Original variant, got %q", script)
	}
}

func TestSelectLyrics_EnglishFallsBackToRomaji(t *testing.T) {
	variants := []APILyrics{
		{TranslationType: "Original", Value: "japanese text", CultureCodes: []string{"ja"}},
		{TranslationType: "Romanized", Value: "romaji text", CultureCodes: []string{}},
	}

	_, _, text := SelectLyrics(variants, LangEnglish, false)
	if text != "romaji text" {
		t.Errorf("Expected English preference to degrade to Romaji, got %q", text)
	}
}

func TestSelectLyrics_DefaultFallback(t *testing.T) {
	variants := []APILyrics{
		{TranslationType: "Translation", Value: "translated", CultureCodes: []string{"en"}},
		{TranslationType: "Original", Value: "original", CultureCodes: []string{"ja"}},
	}

	_, _, text := SelectLyrics(variants, LangDefault, false)
	if text != "original" {
		t.Errorf("Expected Default preference to pick the Original variant, got %q", text)
	}
}

func TestSelectLyrics_Empty(t *testing.T) {
	script, language, text := SelectLyrics(nil, LangEnglish, false)
	if script != "" || language != "" || text != "" {
		t.Errorf("Expected empty results for no variants, got %s/%s/%q", script, language, text)
	}
}
