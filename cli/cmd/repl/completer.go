package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// isWordBoundary reports whether the rune delimits words for completion
// purposes. This covers whitespace and the language's punctuation and
// operator characters.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t',
		'(', ')', '{', '}',
		'=', '^', '@', '"', '%',
		'+', '-', '*', '/':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its
// byte boundaries within input. An empty word is returned when the
// cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor. Candidates are control commands when the line starts with a
// colon, and declared constant names otherwise.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	wordStart, wordEnd int,
) {
	input := m.input.Value()
	cursor := m.input.Position()

	word, ws, we := wordBounds(input, cursor)

	if strings.HasPrefix(input, ":") {
		// Complete the command itself, including its colon.
		if ws > 0 && input[ws-1] == ':' {
			ws--
			word = input[ws:we]
		}

		if word == "" || word == ":" {
			return nil, ws, we
		}

		return fuzzy.Find(word, ctrlCommands), ws, we
	}

	if word == "" {
		return nil, ws, we
	}

	candidates := m.doc.Names()
	if len(candidates) == 0 {
		return nil, ws, we
	}

	return fuzzy.Find(word, candidates), ws, we
}

// refreshMatches recomputes completion candidates after input changes.
func refreshMatches(m *model) {
	if m.tabActive {
		return
	}

	m.matches, m.wordStart, m.wordEnd = m.computeMatches()
	m.suggIdx = -1
}

// replaceCurrentWord swaps the word under the cursor for the candidate
// and places the cursor after it.
func replaceCurrentWord(m *model, candidate string) {
	input := m.input.Value()

	if m.wordStart > len(input) || m.wordEnd > len(input) {
		return
	}

	replaced := input[:m.wordStart] + candidate + input[m.wordEnd:]

	m.input.SetValue(replaced)
	m.input.SetCursor(m.wordStart + len(candidate))
	m.wordEnd = m.wordStart + len(candidate)
}

// renderCandidateBar builds the single-line completion bar, ellipsized
// to fit within the given terminal width. The selected candidate (when
// tabbing) uses the selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		selected := tabActive && i == suggIdx
		rendered := renderCandidate(match, selected)
		entryWidth := lipgloss.Width(rendered)

		if i > 0 {
			entryWidth += sepWidth
		}

		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth

		if i == len(matches)-1 {
			break
		}
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		ch := string(r)
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(ch))
		} else {
			b.WriteString(baseStyle.Render(ch))
		}
	}

	return b.String()
}
