package ui

import (
	"os"
	"os/exec"
	"strings"
)

// For a list of possible icons, see: https://specifications.freedesktop.org/icon-naming-spec/icon-naming-spec-latest.html
const (
	IconDialogError = "dialog-error"
	IconDialogInfo  = "dialog-information"
	IconDialogWarn  = "dialog-warning"

	UrgencyLow      = "low"
	UrgencyNormal   = "normal"
	UrgencyCritical = "critical"

	notificationAppName = "mk2fan"
)

var notificationsEnabled = false

// SetNotificationsEnabled toggles desktop notifications, which are off by default.
func SetNotificationsEnabled(enabled bool) {
	notificationsEnabled = enabled
}

func NotifyInfo(title, text string) {
	NotifySend(UrgencyLow, title, text, IconDialogInfo)
}

func NotifyWarn(title, text string) {
	NotifySend(UrgencyNormal, title, text, IconDialogWarn)
}

func NotifyError(title, text string) {
	NotifySend(UrgencyCritical, title, text, IconDialogError)
}

// NotifySend sends a notification to the user of the current display session using notify-send.
func NotifySend(urgency, title, text, icon string) {
	if !notificationsEnabled {
		return
	}

	display, exists := os.LookupEnv("DISPLAY")
	if !exists {
		Debug("Cannot send notification, missing env variable 'DISPLAY'")
		return
	}

	user, err := findDisplayUser(display)
	if err != nil {
		Warning("Cannot send notification, unable to find user of display session: %v", err)
		return
	}
	if len(user) <= 0 {
		Warning("Cannot send notification, unable to detect user of current display session")
		return
	}

	output, err := exec.Command("id", "-u", user).Output()
	userIdString := strings.TrimSpace(string(output))
	if err != nil || len(userIdString) <= 0 {
		Warning("Cannot send notification, unable to detect user id of %s: %v", user, err)
		return
	}

	cmd := exec.Command("sudo", "-u", user,
		"DISPLAY="+display,
		"DBUS_SESSION_BUS_ADDRESS=unix:path=/run/user/"+userIdString+"/bus",
		"notify-send",
		"-a", notificationAppName,
		"-u", urgency,
		"-i", icon,
		title, text,
	)
	if err := cmd.Run(); err != nil {
		Error("Error sending notification: %v", err)
	}
}

func findDisplayUser(display string) (string, error) {
	output, err := exec.Command("who").Output()
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(string(output), "\n") {
		if !strings.Contains(line, display) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 0 {
			return strings.TrimSpace(fields[0]), nil
		}
	}
	return "", nil
}
