package gen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vocab-forge/vocabforge/internal/models"
)

// languageList is the comma-separated code list embedded in prompts.
func languageList() string {
	codes := make([]string, len(models.SupportedLanguages))
	for i, l := range models.SupportedLanguages {
		codes[i] = l.Code
	}
	return strings.Join(codes, ", ")
}

// buildPrompt produces the enrichment prompt for one term. The response
// contract matches models.GenerationResult's JSON shape.
func buildPrompt(term, languageName string) string {
	langs := languageList()
	return fmt.Sprintf(`Analyze the vocabulary term %q which is a %s word.
Respond with a single JSON object and nothing else. ALL FIELDS ARE REQUIRED:

{
  "script": "...",
  "phonetic": "...",
  "variant": "...",
  "partOfSpeech": "...",
  "translations": { "<lang code>": "..." },
  "exampleSentence": "...",
  "exampleSentenceStructure": [
    { "word": "...", "script": "...", "variant": "...", "translation": "...", "translations": { "<lang code>": "..." } }
  ],
  "exampleScript": "...",
  "exampleTranslations": { "<lang code>": "..." }
}

Rules:
1. script:
   - If Japanese: Kanji with Furigana or Kana.
   - If Chinese: Pinyin, strictly lowercase, space-separated, with tone marks ("de guo" style, never "DeGuo").
   - If Korean: Hangul or Romanization.
   - Otherwise: "N/A" or IPA.
2. variant: the Traditional Chinese form if Chinese, alternate script if useful, else empty string.
3. phonetic: IPA or standard romanization.
4. partOfSpeech: grammatical category.
5. translations: translate %q into every code of: %s.
6. exampleSentence: a natural example sentence in %s.
7. exampleSentenceStructure: the sentence broken into tokens, punctuation as separate tokens,
   each with its reading, variant, short English translation, and per-language translations.
8. exampleScript: the full reading of the sentence (lowercase space-separated Pinyin for Chinese).
9. exampleTranslations: translate the sentence into every code of: %s.`,
		term, languageName, term, langs, languageName, langs)
}

// parseResult decodes a model response into a GenerationResult. It
// tolerates markdown code fences around the JSON body.
func parseResult(raw string) (*models.GenerationResult, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	if text == "" {
		return nil, fmt.Errorf("empty generation response")
	}

	var result models.GenerationResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("parse generation response: %w", err)
	}
	if result.Translations == nil {
		result.Translations = models.TranslationMap{}
	}
	if result.ExampleTranslations == nil {
		result.ExampleTranslations = models.TranslationMap{}
	}
	return &result, nil
}
