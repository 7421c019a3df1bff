package practice

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/oracle"
	sess "github.com/lotushuong244-bit/englishmaster/internal/session"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/components"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	accent := theme.UnitColor(p.sess.Unit().Color)

	var b strings.Builder
	b.WriteString(p.renderTop(cw, accent))
	b.WriteString("\n\n")

	switch p.sess.Mode() {
	case curriculum.ModeVocab:
		b.WriteString(p.renderVocab(cw, accent))
	case curriculum.ModeListening, curriculum.ModeGrammar:
		b.WriteString(p.renderQuiz(cw, accent))
	case curriculum.ModeSpeaking, curriculum.ModePronunciation:
		b.WriteString(p.renderRecording(cw, accent))
	}

	if p.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(p.notice))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (p *PracticeScreen) renderTop(cw int, accent color.Color) string {
	u := p.sess.Unit()
	title := lipgloss.NewStyle().Foreground(accent).Bold(true).
		Render(fmt.Sprintf("Unit %d · %s", u.Order, u.Title))
	xp := lipgloss.NewStyle().Foreground(theme.Gold).
		Render(fmt.Sprintf("+%d XP", p.sess.XPEarned()))
	gap := max(cw-lipgloss.Width(title)-lipgloss.Width(xp), 1)

	step := ""
	if n := p.sess.Count(); n > 1 {
		step = fmt.Sprintf("%d/%d", min(p.sess.Step()+1, n), n)
	}
	bar := components.NewProgressBar(step, float64(p.sess.Progress())/100, true, cw)
	bar.Fill = accent

	return title + strings.Repeat(" ", gap) + xp + "\n" + bar.View()
}

func (p *PracticeScreen) renderVocab(cw int, accent color.Color) string {
	w, ok := p.sess.VocabWord()
	if !ok {
		return ""
	}
	card := p.sess.Card()

	var b strings.Builder
	if !card.Flipped {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.Word))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(w.Phonetic))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Press Space to see the meaning"))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(accent).Bold(true).Render(w.Meaning))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("“" + w.Example + "”"))
		switch {
		case card.Loading:
			b.WriteString("\n\n")
			b.WriteString(theme.Hint.Render("Finding another example..."))
		case card.Example != "":
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Sky).Render("More: " + card.Example))
		}
	}
	return components.Panel(lipgloss.NewStyle().Width(cw-6).Align(lipgloss.Center).Render(b.String()), cw, accent)
}

func (p *PracticeScreen) renderQuiz(cw int, accent color.Color) string {
	u := p.sess.Unit()
	quiz := p.sess.Quiz()

	var b strings.Builder
	if p.sess.Mode() == curriculum.ModeListening {
		b.WriteString(lipgloss.NewStyle().Foreground(accent).Bold(true).Render("🎧 " + u.Listening.Title))
		b.WriteString("\n")
		if p.sess.Playing() {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Sky).Render("🔊 Playing..."))
			b.WriteString("\n")
		}
		if quiz.ShowTranscript {
			b.WriteString(components.Panel(theme.Body.Render(u.Listening.Transcript), cw, theme.Border))
		} else {
			b.WriteString(theme.Hint.Render("Press P to listen or T to read the transcript"))
		}
	} else if u.Grammar != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(accent).Bold(true).Render("📘 " + u.Grammar.Topic))
		b.WriteString("\n")
		b.WriteString(components.Panel(theme.Body.Render(u.Grammar.Rule), cw, theme.Border))
	}
	b.WriteString("\n\n")

	reviews, _ := p.sess.Review()
	for i, q := range u.Questions(p.sess.Mode()) {
		list := components.ChoiceList{
			Number:  i + 1,
			Prompt:  q.Prompt,
			Options: q.Options,
			Chosen:  quiz.Selections[i],
			Focused: i == p.qCursor && !quiz.Submitted,
		}
		if i < len(reviews) {
			list.Marks = choiceMarks(reviews[i].Marks)
		}
		b.WriteString(list.View())
		b.WriteString("\n")
	}

	if quiz.Submitted {
		total := len(quiz.Selections)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).
			Render(fmt.Sprintf("%d/%d correct", quiz.Correct, total)))
	}
	return b.String()
}

func choiceMarks(marks []sess.Mark) []components.ChoiceMark {
	out := make([]components.ChoiceMark, len(marks))
	for i, m := range marks {
		switch m {
		case sess.MarkCorrect:
			out[i] = components.ChoiceCorrect
		case sess.MarkWrong:
			out[i] = components.ChoiceWrong
		}
	}
	return out
}

func (p *PracticeScreen) renderRecording(cw int, accent color.Color) string {
	var b strings.Builder

	if p.sess.Mode() == curriculum.ModeSpeaking {
		ch, _ := p.sess.Challenge()
		b.WriteString(theme.Hint.Render(ch.Context))
		b.WriteString("\n\n")
		b.WriteString(components.Panel(
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(ch.Sentence), cw, accent))
	} else {
		if ex := p.sess.Unit().Pronunciation; ex != nil {
			b.WriteString(theme.Hint.Render(ex.Rule))
			b.WriteString("\n\n")
		}
		w, _ := p.sess.PronunciationWord()
		b.WriteString(components.Panel(renderSyllables(w, accent), cw, accent))
	}
	b.WriteString("\n\n")
	b.WriteString(p.renderRecorder(cw))
	return b.String()
}

// renderSyllables shows the word split into syllables with the stressed
// one upper-cased and highlighted.
func renderSyllables(w curriculum.PronunciationWord, accent color.Color) string {
	parts := make([]string, len(w.Syllables))
	for i, syl := range w.Syllables {
		if i == w.Stress {
			parts[i] = lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true).
				Render(strings.ToUpper(syl))
		} else {
			parts[i] = theme.Body.Render(syl)
		}
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.Word) +
		"\n" + strings.Join(parts, theme.Hint.Render(" · "))
}

func (p *PracticeScreen) renderRecorder(cw int) string {
	rec := p.sess.Recorder()

	var b strings.Builder
	switch rec.State {
	case sess.RecorderIdle:
		b.WriteString(theme.Hint.Render("Press R and say the sentence"))
	case sess.RecorderRecording:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("● Listening..."))
		if p.typing {
			b.WriteString("\n")
			b.WriteString(p.input.View())
		}
	case sess.RecorderEvaluating:
		b.WriteString(theme.Hint.Render(fmt.Sprintf("You said: “%s”", rec.Transcript)))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Sky).Render("Checking..."))
	case sess.RecorderFeedback:
		b.WriteString(theme.Hint.Render(fmt.Sprintf("You said: “%s”", rec.Transcript)))
		b.WriteString("\n\n")
		if rec.Feedback != nil {
			b.WriteString(renderFeedback(*rec.Feedback, cw))
		}
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("R to try again, Enter to continue"))
	}
	if rec.Notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(rec.Notice))
	}
	return b.String()
}

func tierColor(t oracle.Tier) color.Color {
	switch t {
	case oracle.TierExcellent:
		return theme.Success
	case oracle.TierGood:
		return theme.Sky
	}
	return theme.Accent
}

func renderFeedback(fb oracle.Feedback, cw int) string {
	c := tierColor(fb.Tier)
	head := lipgloss.NewStyle().Foreground(c).Bold(true).Render(string(fb.Tier))
	if pts := sess.TierPoints(fb.Tier); pts > 0 && !fb.Fallback {
		head += lipgloss.NewStyle().Foreground(theme.Gold).Render(fmt.Sprintf("  +%d XP", pts))
	}
	body := head + "\n" + theme.Body.Width(cw-6).Render(fb.Text)
	if fb.Hint != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render("Focus: "+fb.Hint)
	}
	return components.Panel(body, cw, c)
}

func scoreLine(r sess.QuizResult) string {
	return fmt.Sprintf("You got %d of %d right! +%d XP. Press Enter to finish.", r.Correct, r.Total, r.Points)
}
