// callback_data.go defines the inline keyboard callback payloads and their
// builders. Payloads are colon-separated, prefix first.
package telegram

import "fmt"

const (
	cbAnswerPrefix = "ans:" // ans:<optionIndex>
	cbNext         = "next" // advance quiz/endless to the next question

	cbQuizStart    = "quiz:start"
	cbEndlessStart = "endless:start"

	cbRecognitionPrefix = "recog:" // recog:<formKey>
	cbRecognitionNext   = "recog:next"

	cbGroupPrefix = "group:" // group:<1|2|3>
	cbGroupNext   = "group:next"

	cbStudyPrefix = "study:" // study:<verbIndex>:<revealMask>:<formKey|next>
	cbVerbsPrefix = "verbs:" // verbs:<page>
	cbProfile     = "profile"

	cbSettingsDiffPrefix = "set:diff:" // set:diff:<N5|N4>
	cbSettingsModePrefix = "set:mode:" // set:mode:<sameVerb|sameForm|mixed>

	cbResetConfirm = "reset:confirm"
	cbResetCancel  = "reset:cancel"
)

func buildAnswerCallback(optionIndex int) string {
	return fmt.Sprintf("%s%d", cbAnswerPrefix, optionIndex)
}

func buildRecognitionCallback(formKey string) string {
	return cbRecognitionPrefix + formKey
}

func buildGroupCallback(group int) string {
	return fmt.Sprintf("%s%d", cbGroupPrefix, group)
}

func buildStudyCallback(verbIndex, revealMask int, action string) string {
	return fmt.Sprintf("%s%d:%d:%s", cbStudyPrefix, verbIndex, revealMask, action)
}

func buildVerbsCallback(page int) string {
	return fmt.Sprintf("%s%d", cbVerbsPrefix, page)
}
