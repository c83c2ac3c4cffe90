package bot

import "strings"

// Keyword-triggered canned replies. They run as a pre-filter before expense
// parsing: a match short-circuits the whole pipeline.
var cannedReplies = []struct {
	keyword string
	reply   string
}{
	{"gracias", "¡De nada Vicky! Para servirte siempre 😄\n Que tengas un excelente día "},
}

// CannedReply returns the fixed reply for the first keyword contained in the
// message, if any. Matching is case-insensitive substring containment.
func CannedReply(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, c := range cannedReplies {
		if strings.Contains(lower, c.keyword) {
			return c.reply, true
		}
	}
	return "", false
}
