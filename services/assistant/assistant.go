package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"hotel-booking/apperrors"

	"google.golang.org/genai"
)

// Intent is the structured form of a free-text front-desk command. Fields
// not mentioned in the command come back empty.
type Intent struct {
	Action         string `json:"action"`
	GuestName      string `json:"guest_name,omitempty"`
	GuestPhone     string `json:"guest_phone,omitempty"`
	RoomCategory   string `json:"room_category,omitempty"`
	CheckInDate    string `json:"check_in_date,omitempty"`
	CheckOutDate   string `json:"check_out_date,omitempty"`
	NumberOfGuests int    `json:"number_of_guests,omitempty"`
	BookingRef     string `json:"booking_ref,omitempty"`
}

// Actions the parser may emit.
const (
	ActionCreateBooking = "create_booking"
	ActionCheckIn       = "check_in"
	ActionCheckOut      = "check_out"
	ActionCancelBooking = "cancel_booking"
	ActionRoomStatus    = "room_status"
	ActionUnknown       = "unknown"
)

// Service turns typed or transcribed front-desk commands into structured
// intents. Speech capture and playback stay on the client; this only parses
// text.
type Service struct {
	model string
}

func NewService() *Service {
	return &Service{model: "gemini-2.5-flash-lite"}
}

const parsePrompt = `You are the command parser of a hotel front desk system.
Parse the command below and return ONLY valid JSON, no prose.

Required JSON format:
{
"action": string,            // one of: create_booking, check_in, check_out, cancel_booking, room_status, unknown
"guest_name": string,        // full guest name if mentioned, else ""
"guest_phone": string,       // phone number if mentioned, else ""
"room_category": string,     // one of: Standard, Deluxe, Lake View, or ""
"check_in_date": string,     // YYYY-MM-DD if mentioned, else ""
"check_out_date": string,    // YYYY-MM-DD if mentioned, else ""
"number_of_guests": number,  // 0 when not mentioned
"booking_ref": string        // booking reference code if mentioned, else ""
}

Command: %s`

// ParseCommand extracts a structured intent from a free-text command.
func (s *Service) ParseCommand(ctx context.Context, command string) (*Intent, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil, apperrors.Validation("command text is required")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not found in environment variables")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	content := &genai.Content{
		Parts: []*genai.Part{
			{Text: fmt.Sprintf(parsePrompt, command)},
		},
	}

	result, err := client.Models.GenerateContent(
		ctx,
		s.model,
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.1)),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content generated")
	}
	responseText := result.Candidates[0].Content.Parts[0].Text
	if responseText == "" {
		return nil, fmt.Errorf("empty model response")
	}

	jsonText := extractJSONFromMarkdown(responseText)

	var intent Intent
	if err := json.Unmarshal([]byte(jsonText), &intent); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, response: %s", err, jsonText)
	}
	if intent.Action == "" {
		intent.Action = ActionUnknown
	}
	return &intent, nil
}

// extractJSONFromMarkdown extracts JSON content from markdown code blocks
func extractJSONFromMarkdown(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") && strings.HasSuffix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") {
		lines := strings.Split(text, "\n")
		if len(lines) > 1 {
			jsonLines := lines[1 : len(lines)-1]
			return strings.Join(jsonLines, "\n")
		}
	}

	return text
}
