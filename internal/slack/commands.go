package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdConfess CommandType = "confess"
	CmdSnitch  CommandType = "snitch"
	CmdExempt  CommandType = "exempt"
	CmdName    CommandType = "name"
	CmdReport  CommandType = "report"
	CmdList    CommandType = "list"
	CmdHelp    CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "confess":
		cmd.Type = CmdConfess
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "snitch":
		cmd.Type = CmdSnitch
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "exempt":
		cmd.Type = CmdExempt
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "name":
		cmd.Type = CmdName
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "report", "status":
		cmd.Type = CmdReport
	case "list", "ls":
		cmd.Type = CmdList
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Corrections:*
• ` + "`/bedtime confess BRACKET`" + ` - Set your own result for tonight (ex: bruh)
• ` + "`/bedtime snitch @user BRACKET`" + ` - Set someone else's result for tonight

*Exemptions:*
• ` + "`/bedtime exempt @user today`" + ` - Exempt a user from tonight's judgment
• ` + "`/bedtime exempt @user tomorrow`" + ` - Exempt a user from tomorrow night

*Names:*
• ` + "`/bedtime name NAME`" + ` - Set the name used for you in reports
• ` + "`/bedtime name @user NAME`" + ` - Set the name used for another user

*Info:*
• ` + "`/bedtime report`" + ` - Show tonight's results so far
• ` + "`/bedtime list`" + ` - List watched users and the bedtime patrol
• ` + "`/bedtime help`" + ` - Show this help`
}
