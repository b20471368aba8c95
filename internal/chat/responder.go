// Package chat implements the fitness assistant: a keyword responder and
// the conversation it feeds.
package chat

import "strings"

// Topic names the rule that produced a reply.
type Topic string

const (
	TopicWorkout    Topic = "workout"
	TopicWeightLoss Topic = "weight_loss"
	TopicMuscle     Topic = "muscle"
	TopicStretching Topic = "stretching"
	TopicNutrition  Topic = "nutrition"
	TopicDefault    Topic = "default"
)

type rule struct {
	topic    Topic
	keywords []string
	answer   string
}

// rules are checked in order; the first rule with a matching keyword wins.
var rules = []rule{
	{
		topic:    TopicWorkout,
		keywords: []string{"workout", "routine"},
		answer:   "Here's a great 3-day full-body workout routine for beginners that focuses on compound movements and gradual progression.",
	},
	{
		topic:    TopicWeightLoss,
		keywords: []string{"weight loss", "lose weight"},
		answer:   "For weight loss, focus on creating a calorie deficit through both diet and exercise. I recommend a combination of strength training and cardio.",
	},
	{
		topic:    TopicMuscle,
		keywords: []string{"muscle", "strength"},
		answer:   "To build muscle, you need to focus on progressive overload, proper nutrition with adequate protein, and sufficient recovery time.",
	},
	{
		topic:    TopicStretching,
		keywords: []string{"stretch", "flexibility"},
		answer:   "A good stretching routine should include dynamic stretches before workouts and static stretches afterward. Hold each stretch for 20-30 seconds.",
	},
	{
		topic:    TopicNutrition,
		keywords: []string{"nutrition", "food", "eat"},
		answer:   "For post-workout nutrition, aim to consume protein and carbs within 30 minutes. Good options include a protein shake with fruit or chicken and rice.",
	},
}

// DefaultReply is the answer when no keyword matches.
const DefaultReply = "I'm your AI fitness assistant. Ask me about workout routines, nutrition advice, or fitness tips!"

// WelcomeText opens every conversation.
const WelcomeText = "Hello! I'm your AI fitness assistant. How can I help you with your fitness journey today?"

// Match returns the topic and canned answer for message. Matching is a
// case-insensitive substring search.
func Match(message string) (Topic, string) {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.topic, r.answer
			}
		}
	}
	return TopicDefault, DefaultReply
}

// Reply returns the canned answer for message.
func Reply(message string) string {
	_, answer := Match(message)
	return answer
}
