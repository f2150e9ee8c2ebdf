package compliance

import (
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
)

// verbWindow is how far a notification verb may sit from a role mention, in
// bytes, for the mention to count as evidence of notification.
const verbWindow = 120

// checkNotifications builds the per-role notification roll. A role mentioned
// near a notification verb is compliant; a role mentioned with no verb in
// reach is cannot_determine; a role never mentioned is cannot_determine and
// not counted against the aggregate.
func (c *Checker) checkNotifications(entities []models.ExtractedEntity) map[models.NotificationRole]models.NotificationCheck {
	var verbOffsets []int
	for _, ent := range entities {
		if ent.Kind == models.EntityKindKeywordHit && ent.Category == "notification_verb" {
			verbOffsets = append(verbOffsets, ent.Offset)
		}
	}

	out := make(map[models.NotificationRole]models.NotificationCheck, len(models.NotificationRoles))
	for _, role := range models.NotificationRoles {
		out[role] = models.NotificationCheck{Status: models.ComplianceStatusCannotDetermine}
	}

	for _, ent := range entities {
		if ent.Kind != models.EntityKindPartyRole {
			continue
		}
		role := models.NotificationRole(trimRolePrefix(ent.Category))
		check, ok := out[role]
		if !ok {
			continue
		}
		check.Mentioned = true
		if check.Status != models.ComplianceStatusCompliant && verbNearby(verbOffsets, ent.Offset) {
			check.Status = models.ComplianceStatusCompliant
		}
		out[role] = check
	}
	return out
}

// aggregateArt889 folds the per-role checks into the Art. 889 verdict. The
// debtor must be individually compliant; beyond that only roles the document
// actually mentions are held to the standard.
func aggregateArt889(checks map[models.NotificationRole]models.NotificationCheck) models.ComplianceStatus {
	executado := checks[models.RoleExecutado]
	if executado.Status != models.ComplianceStatusCompliant {
		return models.ComplianceStatusCannotDetermine
	}
	for _, role := range models.NotificationRoles {
		check := checks[role]
		if check.Mentioned && check.Status != models.ComplianceStatusCompliant {
			return models.ComplianceStatusPartiallyCompliant
		}
	}
	return models.ComplianceStatusCompliant
}

func verbNearby(verbOffsets []int, offset int) bool {
	for _, v := range verbOffsets {
		d := v - offset
		if d < 0 {
			d = -d
		}
		if d <= verbWindow {
			return true
		}
	}
	return false
}

func trimRolePrefix(category string) string {
	const prefix = "role."
	if len(category) > len(prefix) && category[:len(prefix)] == prefix {
		return category[len(prefix):]
	}
	return category
}
