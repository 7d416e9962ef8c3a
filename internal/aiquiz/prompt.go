package aiquiz

import "fmt"

const systemPrompt = `
You write multiple-choice aptitude questions for an exam preparation site.

Rules:
1. Every question has exactly 4 options and exactly one correct option.
2. Difficulty tiers: easy (direct formula or definition), medium (application
   of a concept), hard (multi-step reasoning or combined concepts).
3. Options must be similar in length and structure. Use plausible distractors
   drawn from common mistakes; the correct option must not stand out.
4. Never reveal the answer in the question text. Put reasoning only in the
   "explanation" field.
5. Output pure, valid JSON and nothing else:

[
  {
    "text": "<question text>",
    "options": ["...", "...", "...", "..."],
    "correct_index": <1-4>,
    "explanation": "<one or two sentences>"
  }
]

correct_index is 1-based: 1 means the first option is correct.
`

func buildUserPrompt(subtopicName string, dto GenerateDraftsDTO) string {
	count := dto.Count
	if count <= 0 {
		count = 3
	}
	if count > 10 {
		count = 10
	}

	hints := ""
	if dto.Hints != "" {
		hints = fmt.Sprintf(" Additional guidance from the reviewer: %s.", dto.Hints)
	}

	return fmt.Sprintf(
		"Generate %d %s multiple-choice questions on the topic %q.%s "+
			"Follow the JSON format from the system prompt exactly.",
		count, dto.Difficulty, subtopicName, hints,
	)
}
