package utils

import (
	"fmt"
	"log"
	"slices"
	"time"

	"studynotion/config"
	"studynotion/database"
	"studynotion/models"

	"github.com/robfig/cron/v3"
)

// logAudit logs roster audit events with timestamp
func logAudit(message string) {
	log.Printf("[ROSTER-AUDIT %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartRosterAudit schedules a periodic scan for drift between the two sides
// of an enrollment (user.Courses vs course.StudentsEnrolled). The enrollment
// transaction keeps both sides in step; the audit surfaces damage from manual
// or legacy writes.
func StartRosterAudit() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc(config.AppConfig.RosterAuditCron, RunRosterAudit)
	if err != nil {
		log.Fatalf("Invalid ROSTER_AUDIT_CRON expression: %v", err)
	}

	c.Start()
	logAudit("Roster audit scheduled: " + config.AppConfig.RosterAuditCron)
	return c
}

// RunRosterAudit performs a single audit pass.
func RunRosterAudit() {
	db := database.Database.Db

	var courses []models.Course
	if err := db.Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		logAudit("Error fetching courses: " + err.Error())
		return
	}

	var users []models.User
	if err := db.Where("is_deleted = ?", false).Find(&users).Error; err != nil {
		logAudit("Error fetching users: " + err.Error())
		return
	}

	drift := 0
	for _, course := range courses {
		for _, user := range users {
			onRoster := slices.Contains(course.StudentsEnrolled, user.ID)
			hasCourse := slices.Contains(user.Courses, course.ID)

			if onRoster && !hasCourse {
				drift++
				logAudit(fmt.Sprintf("course roster lists user but user has no course entry: course=%d user=%d", course.ID, user.ID))
			}
			if hasCourse && !onRoster {
				drift++
				logAudit(fmt.Sprintf("user lists course but is missing from course roster: course=%d user=%d", course.ID, user.ID))
			}
		}
	}

	for _, user := range users {
		if len(user.Courses) != len(user.CourseProgress) {
			drift++
			logAudit(fmt.Sprintf("user courses/progress length mismatch: user=%d courses=%d progress=%d",
				user.ID, len(user.Courses), len(user.CourseProgress)))
		}
	}

	if drift == 0 {
		logAudit("Audit pass clean")
	}
}
