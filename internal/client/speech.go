package client

import (
	"strings"

	"github.com/vibank/account-system/internal/core/domain"
)

// SpeechRecognizer is the opaque speech-capture capability consumed by
// the voice login path: start/stop a capture and read back the
// transcript.
type SpeechRecognizer interface {
	Start() error
	Stop()
	Transcript() string
	Reset()
}

// VoiceAgentLogin maps a captured utterance straight to a synthetic
// agent identity. It never contacts the account service and performs no
// credential check — this is a mocked demo shortcut for the internal
// agent population, not an authenticated login path.
type VoiceAgentLogin struct {
	rec     SpeechRecognizer
	session *Session
	nav     Navigator
}

func NewVoiceAgentLogin(rec SpeechRecognizer, session *Session, nav Navigator) *VoiceAgentLogin {
	return &VoiceAgentLogin{rec: rec, session: session, nav: nav}
}

// Capture begins listening (e.g. while the push-to-talk key is held).
func (v *VoiceAgentLogin) Capture() error {
	return v.rec.Start()
}

// Complete stops listening and, if a non-empty name was captured,
// establishes a session for the synthetic agent and navigates to the
// agent dashboard. It reports whether a login happened.
func (v *VoiceAgentLogin) Complete() (domain.PublicUser, bool) {
	v.rec.Stop()
	name := strings.TrimSpace(v.rec.Transcript())
	v.rec.Reset()

	if name == "" {
		return domain.PublicUser{}, false
	}

	agent := SyntheticAgent(name)
	v.session.Establish(agent)
	v.nav.NavigateTo(RouteAgentDashboard)
	return agent, true
}

// SyntheticAgent derives the mock agent identity for a spoken name:
// "Alice Smith" → alicesmith@vibank.agent, role agent.
func SyntheticAgent(name string) domain.PublicUser {
	local := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	return domain.PublicUser{
		Name:  name,
		Email: local + "@vibank.agent",
		Role:  domain.RoleAgent,
	}
}
