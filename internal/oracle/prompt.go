package oracle

import (
	"fmt"
	"strings"
)

const evaluateSystemPrompt = `You are an encouraging English teacher for 9th grade students. You judge how well a student said a sentence or word out loud, based on a speech-to-text transcript of their attempt.`

func buildEvaluateUserMessage(target, transcript string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target: %q\n", target)
	fmt.Fprintf(&b, "Student said (transcribed): %q\n", transcript)

	b.WriteString(`
Instructions:
1. If the transcript is very close to the target, give "Excellent".
2. If it has minor errors but is understandable, give "Good".
3. If it is completely wrong or unrelated, give "Try Again".
4. Write a short, encouraging feedback message (max 20 words).
5. If there was a mistake, put the corrected pronunciation focus in correctedPronunciation. Otherwise leave it empty.`)

	return b.String()
}

const examplesSystemPrompt = `You write short example sentences for English vocabulary flashcards. The audience is 9th grade students.`

func buildExamplesUserMessage(word, topic string) string {
	return fmt.Sprintf("Generate 2 simple, fun example sentences for the word %q related to the topic %q. Use plain text, one sentence per item.", word, topic)
}
