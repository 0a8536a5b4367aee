package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sapeol/memorial-app/internal/delivery/http/controllers"
	"github.com/sapeol/memorial-app/internal/delivery/http/middleware"
	"github.com/sapeol/memorial-app/internal/domain"
)

// Controllers bundles the controllers the router wires up.
type Controllers struct {
	Auth       *controllers.AuthController
	Memorial   *controllers.MemorialController
	Invitation *controllers.InvitationController
	Milestone  *controllers.MilestoneController
	Media      *controllers.MediaController
	Guestbook  *controllers.GuestbookController
	Ritual     *controllers.RitualController
}

// NewRouter initializes the HTTP router with all application routes.
// Everything except signup, login, and the invitation preview requires a
// Bearer token.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("GET /users/me", requireAuth(c.Auth.Me))

	// Memorials
	mux.HandleFunc("POST /memorials", requireAuth(c.Memorial.CreateMemorial))
	mux.HandleFunc("GET /memorials/me", requireAuth(c.Memorial.ListMyMemorials))
	mux.HandleFunc("GET /memorials/{memorialID}", requireAuth(c.Memorial.GetMemorial))
	mux.HandleFunc("PATCH /memorials/{memorialID}", requireAuth(c.Memorial.UpdateMemorial))
	mux.HandleFunc("DELETE /memorials/{memorialID}", requireAuth(c.Memorial.DeleteMemorial))

	// Participants
	mux.HandleFunc("GET /memorials/{memorialID}/participants", requireAuth(c.Memorial.ListParticipants))
	mux.HandleFunc("PATCH /memorials/{memorialID}/participants/{participantID}", requireAuth(c.Memorial.ChangeParticipantAccess))
	mux.HandleFunc("DELETE /memorials/{memorialID}/participants/{participantID}", requireAuth(c.Memorial.RemoveParticipant))

	// Invitations. The preview is public so invitees can see what they were
	// invited to before signing up.
	mux.HandleFunc("POST /memorials/{memorialID}/invitations", requireAuth(c.Invitation.CreateInvitation))
	mux.HandleFunc("GET /memorials/{memorialID}/invitations", requireAuth(c.Invitation.ListInvitations))
	mux.HandleFunc("DELETE /memorials/{memorialID}/invitations/{invitationID}", requireAuth(c.Invitation.RevokeInvitation))
	mux.HandleFunc("GET /invitations/{invitationID}/preview", c.Invitation.GetInvitationPreview)
	mux.HandleFunc("POST /invitations/{invitationID}/accept", requireAuth(c.Invitation.AcceptInvitation))

	// Milestones
	mux.HandleFunc("POST /memorials/{memorialID}/milestones", requireAuth(c.Milestone.SubmitMilestone))
	mux.HandleFunc("GET /memorials/{memorialID}/milestones", requireAuth(c.Milestone.ListTimeline))
	mux.HandleFunc("POST /memorials/{memorialID}/milestones/{milestoneID}/approve", requireAuth(c.Milestone.ApproveMilestone))
	mux.HandleFunc("POST /memorials/{memorialID}/milestones/{milestoneID}/reject", requireAuth(c.Milestone.RejectMilestone))
	mux.HandleFunc("PATCH /memorials/{memorialID}/milestones/{milestoneID}", requireAuth(c.Milestone.UpdateMilestone))
	mux.HandleFunc("DELETE /memorials/{memorialID}/milestones/{milestoneID}", requireAuth(c.Milestone.DeleteMilestone))

	// Media
	mux.HandleFunc("POST /memorials/{memorialID}/media", requireAuth(c.Media.AddMedia))
	mux.HandleFunc("GET /memorials/{memorialID}/media", requireAuth(c.Media.ListMedia))
	mux.HandleFunc("PATCH /memorials/{memorialID}/media/{mediaID}", requireAuth(c.Media.UpdateMedia))
	mux.HandleFunc("DELETE /memorials/{memorialID}/media/{mediaID}", requireAuth(c.Media.DeleteMedia))

	// Guestbook
	mux.HandleFunc("POST /memorials/{memorialID}/guestbook", requireAuth(c.Guestbook.AddEntry))
	mux.HandleFunc("GET /memorials/{memorialID}/guestbook", requireAuth(c.Guestbook.ListEntries))
	mux.HandleFunc("PATCH /memorials/{memorialID}/guestbook/{entryID}", requireAuth(c.Guestbook.UpdateEntry))
	mux.HandleFunc("DELETE /memorials/{memorialID}/guestbook/{entryID}", requireAuth(c.Guestbook.DeleteEntry))

	// Rituals
	mux.HandleFunc("POST /memorials/{memorialID}/rituals", requireAuth(c.Ritual.AddRitual))
	mux.HandleFunc("GET /memorials/{memorialID}/rituals", requireAuth(c.Ritual.ListRituals))
	mux.HandleFunc("DELETE /memorials/{memorialID}/rituals/{ritualID}", requireAuth(c.Ritual.DeleteRitual))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
