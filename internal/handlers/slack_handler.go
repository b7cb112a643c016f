package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bedtime-patrol/bedtime-bot/internal/config"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain"
	"github.com/bedtime-patrol/bedtime-bot/internal/domain/contract"
	slackcmd "github.com/bedtime-patrol/bedtime-bot/internal/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient   contract.SlackClient
	curfewService contract.CurfewService
	cfg           *config.Config
}

func New(slackClient contract.SlackClient, curfewService contract.CurfewService, cfg *config.Config) *SlackHandler {
	return &SlackHandler{
		slackClient:   slackClient,
		curfewService: curfewService,
		cfg:           cfg,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(r, cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// verifiedBody reads the request body and checks the Slack signature.
func (h *SlackHandler) verifiedBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	verifier, err := slack.NewSecretsVerifier(r.Header, h.cfg.SlackSigningSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdConfess:
		return h.handleConfess(r, cmd, slashCmd)
	case slackcmd.CmdSnitch:
		return h.handleSnitch(r, cmd, slashCmd)
	case slackcmd.CmdExempt:
		return h.handleExempt(r, cmd)
	case slackcmd.CmdName:
		return h.handleName(r, cmd, slashCmd)
	case slackcmd.CmdReport:
		return h.handleReport(r)
	case slackcmd.CmdList:
		return h.handleList()
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleConfess(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please name a bracket: `/bedtime confess BRACKET`")
	}

	bracketName := strings.Join(cmd.Args, " ")
	night := h.curfewService.CurrentNight()

	if err := h.curfewService.Correct(r.Context(), night, slashCmd.UserID, bracketName); err != nil {
		if errors.Is(err, domain.ErrInvalidBracketForNight) {
			return h.createErrorResponse(fmt.Sprintf("Could not update; %s is not a valid result for tonight", bracketName))
		}
		return h.createErrorResponse(fmt.Sprintf("Failed to update your result: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "Updated! Thank you for your honesty",
	}
}

func (h *SlackHandler) handleSnitch(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Use: `/bedtime snitch @user BRACKET`")
	}

	userID, ok := parseMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Please mention the user: `/bedtime snitch @user BRACKET`")
	}

	bracketName := strings.Join(cmd.Args[1:], " ")
	night := h.curfewService.CurrentNight()

	if err := h.curfewService.Correct(r.Context(), night, userID, bracketName); err != nil {
		if errors.Is(err, domain.ErrInvalidBracketForNight) {
			return h.createErrorResponse(fmt.Sprintf("Could not update; %s is not a valid result for tonight", bracketName))
		}
		return h.createErrorResponse(fmt.Sprintf("Failed to update result: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "Updated! Thank you for your service",
	}
}

func (h *SlackHandler) handleExempt(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/bedtime exempt @user today|tomorrow`")
	}

	userID, ok := parseMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Please mention the user: `/bedtime exempt @user today|tomorrow`")
	}

	day := "today"
	if len(cmd.Args) > 1 {
		day = cmd.Args[1]
	}

	night := h.curfewService.CurrentNight()
	switch day {
	case "today":
	case "tomorrow":
		night = night.Next()
	default:
		return h.createErrorResponse("Day must be `today` or `tomorrow`")
	}

	if err := h.curfewService.Exempt(r.Context(), night, userID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to exempt user: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("<@%s> has been added to %s's exempt list", userID, day),
	}
}

func (h *SlackHandler) handleName(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/bedtime name NAME` or `/bedtime name @user NAME`")
	}

	targetID := slashCmd.UserID
	nameArgs := cmd.Args
	if userID, ok := parseMention(cmd.Args[0]); ok {
		if len(cmd.Args) < 2 {
			return h.createErrorResponse("Use: `/bedtime name @user NAME`")
		}
		targetID = userID
		nameArgs = cmd.Args[1:]
	}

	name := strings.Join(nameArgs, " ")
	if err := h.curfewService.SetAlias(r.Context(), targetID, name); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to set name: %v", err))
	}

	if targetID == slashCmd.UserID {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("Changed name to '%s'", name),
		}
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("Changed <@%s>'s name to '%s'", targetID, name),
	}
}

func (h *SlackHandler) handleReport(r *http.Request) *slack.Msg {
	night := h.curfewService.CurrentNight()

	report, err := h.curfewService.Generate(r.Context(), night)
	if err != nil {
		return h.createErrorResponse("Failed to build tonight's report")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         h.curfewService.RenderReport(report),
	}
}

func (h *SlackHandler) handleList() *slack.Msg {
	if h.cfg.InsomniacsGroupID == "" || h.cfg.PatrolGroupID == "" {
		return h.createErrorResponse("Usergroups are not configured")
	}

	insomniacs, err := h.groupMemberNames(h.cfg.InsomniacsGroupID)
	if err != nil {
		return h.createErrorResponse("Failed to list watched users")
	}

	patrol, err := h.groupMemberNames(h.cfg.PatrolGroupID)
	if err != nil {
		return h.createErrorResponse("Failed to list the bedtime patrol")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("Insomniacs:\n%s\nBedtime patrol:\n%s",
			strings.Join(insomniacs, "\n"), strings.Join(patrol, "\n")),
	}
}

func (h *SlackHandler) groupMemberNames(groupID string) ([]string, error) {
	members, err := h.slackClient.GetUserGroupMembers(groupID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(members))
	for _, member := range members {
		userInfo, err := h.slackClient.GetUserInfo(member)
		if err != nil || userInfo.Profile.DisplayName == "" {
			names = append(names, member)
			continue
		}
		names = append(names, userInfo.Profile.DisplayName)
	}
	return names, nil
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// parseMention extracts a user ID from a <@U12345> or <@U12345|name> mention.
func parseMention(arg string) (string, bool) {
	arg = strings.TrimSpace(arg)
	if !strings.HasPrefix(arg, "<@") || !strings.HasSuffix(arg, ">") {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(arg, "<@"), ">")
	if name := strings.Index(id, "|"); name >= 0 {
		id = id[:name]
	}
	if id == "" {
		return "", false
	}
	return id, true
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
