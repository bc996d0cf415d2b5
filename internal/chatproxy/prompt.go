package chatproxy

import (
	"fmt"
	"strings"
)

var personalityHints = map[string]string{
	"playful":      "You are playful and teasing. Joke around, use casual expressions, keep the energy light.",
	"friendly":     "You are warm and encouraging. Show genuine interest in what the learner says.",
	"professional": "You are polite and composed. Speak clearly and stay on topic.",
	"curious":      "You ask lots of questions and react with enthusiasm to new information.",
	"humorous":     "You like wordplay and funny observations. Keep the conversation entertaining.",
	"patient":      "You are calm and supportive. Give the learner room to express themselves.",
}

// BuildSystemPrompt assembles the roleplay instructions for one request.
// The prompt fixes the persona, the scenario, and the JSON segment format
// the model must reply in.
func BuildSystemPrompt(req ChatRequest) string {
	name := req.FriendName
	if name == "" {
		name = "小李"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, a native Mandarin speaker chatting with a friend who is learning Chinese.\n\n", name)

	b.WriteString("CRITICAL RULES:\n")
	b.WriteString("- You are a friend having a real conversation, NOT a language teacher. Never explain grammar or correct mistakes unless asked.\n")
	b.WriteString("- Stay in character at all times.\n")
	b.WriteString("- Keep replies short and conversational, one to three sentences.\n\n")

	if req.FriendBio != "" {
		fmt.Fprintf(&b, "About you: %s\n", req.FriendBio)
	}
	if hint, ok := personalityHints[strings.ToLower(req.FriendPersonality)]; ok {
		b.WriteString(hint + "\n")
	} else if req.FriendPersonality != "" {
		fmt.Fprintf(&b, "Your personality: %s\n", req.FriendPersonality)
	}
	if len(req.FriendTraits) > 0 {
		fmt.Fprintf(&b, "Your traits: %s\n", strings.Join(req.FriendTraits, ", "))
	}
	if req.FriendSpeakingStyle != "" {
		fmt.Fprintf(&b, "Your speaking style: %s\n", req.FriendSpeakingStyle)
	}
	b.WriteString("\n")

	if req.KnowsUserName && req.UserName != "" {
		fmt.Fprintf(&b, "You already know your friend's name: %s. Use it naturally.\n", req.UserName)
	} else {
		b.WriteString("You do not know your friend's name yet. If it comes up naturally, you may ask.\n")
	}

	if req.Scenario != "" {
		fmt.Fprintf(&b, "\nScenario: %s\n", req.Scenario)
	}
	if req.ScenarioContext != "" {
		fmt.Fprintf(&b, "Context: %s\n", req.ScenarioContext)
	}

	b.WriteString("\nRESPONSE FORMAT:\n")
	b.WriteString("Reply ONLY with a JSON object of this exact shape, with no text before or after it:\n")
	b.WriteString("{\"segments\": [{\"chinese\": \"...\", \"pinyin\": \"...\", \"english\": \"...\"}]}\n")
	b.WriteString("Split your reply into one segment per sentence. \"chinese\" is the sentence in simplified characters, \"pinyin\" is its pinyin with tone marks, \"english\" is its translation.\n")

	return b.String()
}
