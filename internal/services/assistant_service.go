package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

var ErrUnknownLevel = errors.New("no recommendation for this addiction level")

// KnowledgeEntry holds the canned assistant answers for one addiction level.
type KnowledgeEntry struct {
	Info       string
	Symptoms   string
	Tips       string
	Risks      string
	Activities string
}

var knowledgeBase = map[AddictionLevel]KnowledgeEntry{
	LevelLow: {
		Info:       "Low gaming addiction refers to a healthy relationship with gaming. At this level, gaming is a hobby that doesn't interfere with daily responsibilities, social interactions, or physical health.",
		Symptoms:   "No significant symptoms. You likely play games occasionally for enjoyment while maintaining a balanced lifestyle.",
		Tips:       "Continue maintaining balance. Set reasonable time limits, take breaks, and keep gaming as just one of many activities you enjoy.",
		Risks:      "Even at low levels, be mindful not to gradually increase gaming time, especially during stressful periods.",
		Activities: "Exercise, reading, social gatherings, hobbies like cooking or gardening, and outdoor activities can help maintain your healthy balance.",
	},
	LevelModerate: {
		Info:       "Moderate gaming addiction suggests gaming is becoming a significant part of your life. While not severely impacting responsibilities, you may be spending more time gaming than intended.",
		Symptoms:   "Occasionally losing track of time while gaming, mild irritability when unable to play, thinking about games when doing other activities.",
		Tips:       "Set strict time limits using timers. Schedule gaming sessions after completing important tasks. Have at least 2-3 game-free days per week.",
		Risks:      "Without boundaries, moderate addiction can progress to more severe levels, potentially affecting work/school performance and relationships.",
		Activities: "Try new hobbies that provide similar satisfaction as gaming, like sports, puzzle-solving, creative arts, or joining clubs related to your interests.",
	},
	LevelHigh: {
		Info:       "High gaming addiction indicates gaming has become a dominant activity in your life, affecting your daily functioning, relationships, and possibly health.",
		Symptoms:   "Persistent thoughts about gaming, defensiveness about gaming habits, neglecting responsibilities, declining social invitations to play games, and disrupted sleep patterns.",
		Tips:       "Consider a gaming detox for 2-4 weeks. Delete games from easily accessible devices. Ask friends or family to help monitor your gaming time. Create a strict schedule.",
		Risks:      "High addiction levels can lead to academic or professional failure, relationship breakdown, physical health issues from sedentary behavior, and mental health challenges.",
		Activities: "Physical exercise is crucial - try team sports, hiking, or cycling. Reconnect with friends in person. Consider mindfulness practices like meditation or yoga.",
	},
	LevelSevere: {
		Info:       "Severe gaming addiction is a serious condition where gaming has taken control of your life, significantly harming your well-being, relationships, and daily functioning.",
		Symptoms:   "Extreme irritability or anxiety when unable to play, complete neglect of personal hygiene and basic needs, social isolation, failed attempts to cut back, gaming despite negative consequences.",
		Tips:       "Professional intervention is strongly recommended. This may include therapy, support groups, or in severe cases, rehabilitation programs.",
		Risks:      "Severe addiction can lead to complete social isolation, job loss, academic failure, depression, anxiety disorders, and physical health problems.",
		Activities: "Focus on rebuilding basic routines first: regular sleep schedule, healthy meals, and physical activity. Small, achievable goals are important.",
	},
}

// generalKnowledge answers questions about any or an unrecognized level.
var generalKnowledge = KnowledgeEntry{
	Info:       "Gaming addiction refers to excessive and compulsive use of video games that leads to significant impairment in personal, family, social, educational, or occupational functioning.",
	Symptoms:   "Common symptoms include preoccupation with gaming, withdrawal symptoms when unable to play, inability to reduce playing time, loss of interest in other activities, and continued gaming despite negative consequences.",
	Tips:       "Track your gaming time, set reasonable limits, create a schedule that includes other activities, and consider using apps that limit screen time.",
	Risks:      "Excessive gaming can lead to social isolation, depression, anxiety, sleep disruption, and physical health issues including eye strain, carpal tunnel syndrome, and poor posture.",
	Activities: "Consider alternative activities like sports, reading, learning a new skill, volunteering, or spending time in nature.",
}

const professionalHelp = "Seeking professional help for gaming addiction typically involves consulting with mental health professionals like psychologists, psychiatrists, or addiction counselors who specialize in behavioral addictions."

// Doctor is a referral contact attached to a recommendation.
type Doctor struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Recommendation is the per-level guidance shown after a survey.
type Recommendation struct {
	Level   AddictionLevel `json:"level"`
	Advice  string         `json:"advice"`
	Details string         `json:"details"`
	YouTube string         `json:"youtube"`
	Doctor  Doctor         `json:"doctor"`
}

var recommendations = map[AddictionLevel]Recommendation{
	LevelLow: {
		Level:   LevelLow,
		Advice:  "Maintain a healthy balance.",
		Details: "You have a balanced approach to gaming. Keep enjoying, but balance it with work, social life, and physical activities.",
		YouTube: "https://youtu.be/gZOcLix4PGc",
		Doctor:  Doctor{Name: "Dr. John Doe", Phone: "(123) 456-7890", Email: "john.doe@example.com"},
	},
	LevelModerate: {
		Level:   LevelModerate,
		Advice:  "Consider setting boundaries.",
		Details: "Gaming may be taking up more of your time than it should. Set clear time limits and prioritize other activities.",
		YouTube: "https://www.youtube.com/embed/example2",
		Doctor:  Doctor{Name: "Dr. Jane Smith", Phone: "(987) 654-3210", Email: "jane.smith@example.com"},
	},
	LevelHigh: {
		Level:   LevelHigh,
		Advice:  "Reduce screen time and seek balance.",
		Details: "Your gaming is significantly impacting other parts of your life. Start reducing screen time and explore alternative hobbies.",
		YouTube: "https://youtu.be/VzL2A5l-eVU",
		Doctor:  Doctor{Name: "Dr. Emily Johnson", Phone: "(555) 123-4567", Email: "emily.johnson@example.com"},
	},
	LevelSevere: {
		Level:   LevelSevere,
		Advice:  "Seek professional help immediately.",
		Details: "Your gaming habits are seriously impacting your daily life. Please seek professional help to regain balance.",
		YouTube: "https://www.youtube.com/embed/example4",
		Doctor:  Doctor{Name: "Dr. Michael Brown", Phone: "(444) 987-6543", Email: "michael.brown@example.com"},
	},
}

// AssistantService answers free-form questions about an assessed addiction
// level. Without an API key it falls back to the built-in knowledge base.
type AssistantService struct {
	client *openai.Client
}

// NewAssistantService creates a new AssistantService. An empty apiKey disables
// the OpenAI upgrade path.
func NewAssistantService(apiKey string) *AssistantService {
	s := &AssistantService{}
	if apiKey != "" {
		s.client = openai.NewClient(apiKey)
	}
	return s
}

// Recommendation returns the guidance for one addiction level.
func (s *AssistantService) Recommendation(level string) (*Recommendation, error) {
	rec, ok := recommendations[AddictionLevel(level)]
	if !ok {
		return nil, ErrUnknownLevel
	}
	return &rec, nil
}

// Reply answers a user message in the context of their assessed level.
// When an OpenAI client is configured the knowledge-base entry grounds a chat
// completion; any API failure falls back to the keyword answer.
func (s *AssistantService) Reply(ctx context.Context, level, message string) (string, error) {
	entry, known := knowledgeBase[AddictionLevel(level)]
	if !known {
		entry = generalKnowledge
	}

	canned := keywordReply(entry, level, message)

	if s.client == nil {
		return canned, nil
	}

	reply, err := s.completeChat(ctx, entry, level, message)
	if err != nil {
		return canned, nil
	}
	return reply, nil
}

// keywordReply routes the message to a knowledge-base section by keyword.
func keywordReply(entry KnowledgeEntry, level, message string) string {
	m := strings.ToLower(message)

	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(m, w) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("doctor", "specialist", "therapist", "professional"):
		return professionalHelp
	case contains("what is", "explain", "tell me about"):
		return entry.Info
	case contains("symptom", "sign"):
		return entry.Symptoms
	case contains("tip", "help", "advice", "manage"):
		return entry.Tips
	case contains("risk", "danger", "problem"):
		return entry.Risks
	case contains("alternative", "activity", "instead", "hobby", "hobbies"):
		return entry.Activities
	case contains("hello", "hi", "hey"):
		return fmt.Sprintf("Hello! I'm here to help with information about %s. Feel free to ask about symptoms, management tips, risks, or alternative activities.", levelOrDefault(level))
	default:
		return fmt.Sprintf("I'm not sure I understand. You can ask about %s, symptoms, management tips, risks, alternative activities, or information about finding professional help.", levelOrDefault(level))
	}
}

func levelOrDefault(level string) string {
	if level == "" {
		return "gaming addiction"
	}
	return level
}

func (s *AssistantService) completeChat(ctx context.Context, entry KnowledgeEntry, level, message string) (string, error) {
	system := fmt.Sprintf(`You are a supportive gaming addiction assistant. The user's assessed level is %q.

Reference material:
%s
Symptoms: %s
Tips: %s
Risks: %s
Alternative activities: %s

Answer briefly and stay grounded in the reference material. Recommend professional help for severe cases.`,
		levelOrDefault(level), entry.Info, entry.Symptoms, entry.Tips, entry.Risks, entry.Activities)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: system},
				{Role: openai.ChatMessageRoleUser, Content: message},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
