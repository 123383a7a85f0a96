package llm

import (
	"regexp"
	"strings"
)

// FillerAnswer pads the answer list when the model produced fewer answers
// than there are questions.
const FillerAnswer = "I would need more context to provide a comprehensive answer to this question."

var (
	questionsSectionRe = regexp.MustCompile(`(?s)QUESTIONS:(.*?)(?:ANSWERS:|$)`)
	answersSectionRe   = regexp.MustCompile(`(?s)ANSWERS:(.*)$`)
	numberedLineRe     = regexp.MustCompile(`^\d+\.\s*`)
	numberedMarkerRe   = regexp.MustCompile(`(?m)^\d+\.\s*`)
	paragraphSplitRe   = regexp.MustCompile(`\n\n+`)
)

// ParseQA splits a combined model response into its question and answer
// lists. The questions section runs from QUESTIONS: to ANSWERS: (or end of
// text if the marker is missing), the answers section from ANSWERS: to the
// end. Only lines that start with "<int>." are kept, numbering stripped.
//
// The two lists are returned as found: this mode does not reconcile their
// lengths, callers record the mismatch as-is.
func ParseQA(text string) (questions, answers []string) {
	questions = numberedLines(captureSection(questionsSectionRe, text))
	answers = numberedLines(captureSection(answersSectionRe, text))
	return questions, answers
}

// ReconcileAnswers turns a free-text model response into exactly
// questionCount answers. Strategies are tried in order, each falling
// through to the next:
//
//  1. numbered blocks ("<int>." up to the next marker or end of text)
//  2. paragraph split on blank lines
//  3. positional chunking of non-empty lines, when the paragraphs fall
//     short of the question count
//
// Whatever the strategies produce is then padded with FillerAnswer or
// truncated so the result length is always questionCount. Never errors;
// on text with no usable structure every answer is the filler.
func ReconcileAnswers(text string, questionCount int) []string {
	if questionCount < 1 {
		return []string{}
	}

	answers := numberedBlocks(text)
	if len(answers) == 0 {
		answers = paragraphs(text)
		if len(answers) < questionCount {
			answers = chunkLines(text, questionCount)
		}
	}

	for len(answers) < questionCount {
		answers = append(answers, FillerAnswer)
	}
	return answers[:questionCount]
}

func captureSection(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func numberedLines(section string) []string {
	items := []string{}
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !numberedLineRe.MatchString(line) {
			continue
		}
		items = append(items, numberedLineRe.ReplaceAllString(line, ""))
	}
	return items
}

// numberedBlocks extracts multi-line answer blocks, each starting at a
// "<int>." marker at the beginning of a line and running to the next
// marker or the end of the text.
func numberedBlocks(text string) []string {
	locs := numberedMarkerRe.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	blocks := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		blocks = append(blocks, strings.TrimSpace(text[loc[1]:end]))
	}
	return blocks
}

func paragraphs(text string) []string {
	parts := []string{}
	for _, p := range paragraphSplitRe.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// chunkLines divides the non-empty lines of text into questionCount
// positional chunks of max(1, lines/questionCount) lines each; the last
// question consumes whatever remains.
func chunkLines(text string, questionCount int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	chunkSize := len(lines) / questionCount
	if chunkSize < 1 {
		chunkSize = 1
	}

	answers := make([]string, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		start := i * chunkSize
		if start >= len(lines) {
			break
		}
		end := start + chunkSize
		if i == questionCount-1 || end > len(lines) {
			end = len(lines)
		}
		answers = append(answers, strings.Join(lines[start:end], " "))
	}
	return answers
}
