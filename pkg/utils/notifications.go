package utils

import (
	"os"
	"os/exec"
	"strconv"

	"github.com/lvim-tech/qmenu/pkg/config"
)

// ShowErrorNotificationWithConfig sends an error notification using the provided config.
// It returns the started notifier, or nil when nothing was sent.
func ShowErrorNotificationWithConfig(cfg *config.NotificationConfig, title, message string) *exec.Cmd {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	tool := cfg.Tool
	if tool == "" || tool == "auto" {
		tool = detectNotificationTool()
	}

	cmd := notificationCommand(tool, title, message, cfg.Timeout, cfg.Urgency)
	if cmd == nil {
		return nil
	}
	cmd.Env = os.Environ()
	if err := cmd.Start(); err != nil {
		return nil
	}
	return cmd
}

// detectNotificationTool detects which notification tool is available
func detectNotificationTool() string {
	if CommandExists("dunstify") {
		return "dunstify"
	}
	if CommandExists("notify-send") {
		return "notify-send"
	}
	return ""
}

// notificationCommand builds the notifier invocation, or nil for an unknown tool.
func notificationCommand(tool, title, message string, timeout int, urgency string) *exec.Cmd {
	if urgency == "" {
		urgency = "critical"
	}
	if timeout <= 0 {
		timeout = 5000
	}

	switch tool {
	case "dunstify", "notify-send":
		return exec.Command(tool,
			"-u", urgency,
			"-t", strconv.Itoa(timeout),
			title,
			message)
	default:
		return nil
	}
}
