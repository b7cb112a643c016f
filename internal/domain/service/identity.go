package service

import (
	"log"
	"slices"
	"sort"
	"time"

	"github.com/bedtime-patrol/bedtime-bot/internal/domain"
)

// isJudged reports whether the user belongs to the watched (insomniacs)
// usergroup. With no group configured everyone in the bed channel is judged.
func (s *curfewService) isJudged(slackUserID string) (bool, error) {
	if s.cfg.InsomniacsGroupID == "" {
		return true, nil
	}

	members, err := s.slackClient.GetUserGroupMembers(s.cfg.InsomniacsGroupID)
	if err != nil {
		return false, err
	}
	return slices.Contains(members, slackUserID), nil
}

// timezoneFor resolves the user's timezone from usergroup membership. Group
// handles are checked in sorted order so resolution is deterministic; Slack
// lookup failures fall back to the default zone rather than dropping the
// event.
func (s *curfewService) timezoneFor(slackUserID string) *time.Location {
	if s.cfg.SingleTimezone {
		return s.cfg.Location
	}

	groups := make([]string, 0, len(s.cfg.ZoneByRole))
	for group := range s.cfg.ZoneByRole {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	var roleNames []string
	for _, group := range groups {
		members, err := s.slackClient.GetUserGroupMembers(group)
		if err != nil {
			log.Printf("Failed to list members of group %s: %v", group, err)
			continue
		}
		if slices.Contains(members, slackUserID) {
			roleNames = append(roleNames, group)
		}
	}

	return domain.ResolveTimezone(roleNames, s.cfg.ZoneByRole, s.cfg.Location)
}

// displayName prefers the stored alias, then the Slack profile names, the way
// the user would expect to be called out in the report.
func (s *curfewService) displayName(slackUserID string) string {
	alias, err := s.dm.Alias().Get(slackUserID)
	if err != nil {
		log.Printf("Failed to get alias for %s: %v", slackUserID, err)
	}
	if alias != nil && alias.DisplayName != "" {
		return alias.DisplayName
	}

	userInfo, err := s.slackClient.GetUserInfo(slackUserID)
	if err != nil {
		log.Printf("Failed to get user info for %s: %v", slackUserID, err)
		return slackUserID
	}

	if userInfo.Profile.DisplayName != "" {
		return userInfo.Profile.DisplayName
	}
	if userInfo.Profile.RealName != "" {
		return userInfo.Profile.RealName
	}
	if userInfo.Name != "" {
		return userInfo.Name
	}
	return slackUserID
}
