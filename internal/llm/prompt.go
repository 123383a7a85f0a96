package llm

import (
	"fmt"
	"strings"
)

// QuestionPrompt asks the model for tailored interview questions plus
// suggested answers in the QUESTIONS:/ANSWERS: layout that ParseQA expects.
func QuestionPrompt(resumeText string) string {
	return fmt.Sprintf(`Here is a candidate's resume:

%s

Based on the candidate's skills, experience, and education, generate 20 specific realtime technical interview questions.
Additionally, provide a suggested answer for each question.

Format your response as follows:
QUESTIONS:
1. First question
2. Second question
...

ANSWERS:
1. Answer to first question
2. Answer to second question
...

Make sure the questions are tailored to the candidate's background and demonstrate their expertise.`, resumeText)
}

// AnswerPrompt asks the model to answer an existing list of questions.
// Skills and transcript are optional context; the response is requested
// as a plain numbered list so ReconcileAnswers can split it back apart.
func AnswerPrompt(questions []string, skillList []string, transcript string) string {
	numbered := make([]string, len(questions))
	for i, q := range questions {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, q)
	}

	var contextBlock strings.Builder
	if len(skillList) > 0 {
		fmt.Fprintf(&contextBlock, "Skills: %s\n\n", strings.Join(skillList, ", "))
	}
	if transcript != "" {
		fmt.Fprintf(&contextBlock, "Interview transcript: %s\n\n", transcript)
	}

	return fmt.Sprintf(`%s
For the following interview questions, provide professional and thoughtful answers
that would demonstrate expertise in the relevant skills and experience:

%s

Format your response as a numbered list of answers only, with no additional explanation.
Keep each answer concise but comprehensive, around 3-15 sentences.`, contextBlock.String(), strings.Join(numbered, "\n"))
}
