package services

import "fmt"

// answerPrompt grounds the question in the combined context. The context
// comes first so follow-up questions inherit all prior grounding text.
func answerPrompt(question, context string) string {
	return context + "\n\nQuestion: " + question
}

// clarificationPrompt asks the model for one concise clarifying question
// when retrieval confidence is low.
func clarificationPrompt(question, context string) string {
	return fmt.Sprintf(
		"The user asked an ambiguous question: %q\n"+
			"Based on the following context:\n%q\n"+
			"Generate a concise clarifying question to ask the user.",
		question, context)
}
