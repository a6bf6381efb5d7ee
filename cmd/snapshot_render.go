package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/aelpxy/atlassnap/internal/config"
	"github.com/aelpxy/atlassnap/internal/constants"
	"github.com/aelpxy/atlassnap/internal/utils"
	"github.com/aelpxy/atlassnap/pkg/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func formatTime(t *time.Time, layout string) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(layout)
}

func formatSize(n *int64) string {
	if n == nil {
		return "-"
	}
	return utils.FormatBytes(*n)
}

func statusColor(s models.SnapshotStatus) string {
	switch s {
	case models.SnapshotStatusFailed:
		return "9"
	case models.SnapshotStatusInProgress, models.SnapshotStatusQueued:
		return "14"
	case models.SnapshotStatusUnknown:
		return "240"
	default:
		return "10"
	}
}

func styledStatus(s models.SnapshotStatus) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(statusColor(s))).
		Render(s.String())
}

// snapshotName prefers the replica set, then the cluster link.
func snapshotName(s *models.CloudBackupSnapshot) string {
	if s.ReplicaSetName != nil {
		return *s.ReplicaSetName
	}
	if href, ok := s.LinkFor("http://cloud.mongodb.com/cluster"); ok {
		parts := strings.Split(strings.TrimRight(href, "/"), "/")
		return parts[len(parts)-1]
	}
	return "-"
}

func snapshotTable(keys []string, snaps []*models.CloudBackupSnapshot, layout string) *table.Table {
	rows := make([][]string, 0, len(snaps))
	for i, s := range snaps {
		rows = append(rows, []string{
			utils.ShortKey(keys[i], constants.IDDisplayLength),
			utils.Ellipsize(snapshotName(s), constants.ClusterNameWidth),
			s.Type.String(),
			s.SnapshotType.String(),
			styledStatus(s.Status),
			s.CloudProvider.String(),
			formatTime(s.CreatedAt, layout),
			formatTime(s.ExpiresAt, layout),
			formatSize(s.StorageSizeBytes),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().
					Foreground(lipgloss.Color("86")).
					Bold(true).
					Align(lipgloss.Center)
			}
			return lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		}).
		Headers("id", "cluster", "type", "snapshot", "status", "provider", "created", "expires", "size").
		Rows(rows...)
}

// renderSnapshots writes snaps in the requested format. keys label the table
// rows and are ignored by the structured formats.
func renderSnapshots(w io.Writer, format, layout string, keys []string, snaps []*models.CloudBackupSnapshot) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(snaps) == 1 {
			return enc.Encode(snaps[0])
		}
		return enc.Encode(snaps)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		if len(snaps) == 1 {
			return enc.Encode(snaps[0])
		}
		return enc.Encode(snaps)
	case config.FormatTable, "":
		fmt.Fprintln(w, snapshotTable(keys, snaps, layout))
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderDetail(w io.Writer, key string, s *models.CloudBackupSnapshot, layout string) {
	line := func(label, value string) {
		fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-*s", constants.DetailLabelWidth, label+":")), valueStyle.Render(value))
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("==> snapshot %s", key)))
	fmt.Fprintln(w)
	line("id", deref(s.ID))
	line("cluster type", s.Type.String())
	line("snapshot type", s.SnapshotType.String())
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-*s", constants.DetailLabelWidth, "status:")), styledStatus(s.Status))
	line("cloud provider", s.CloudProvider.String())
	line("created", formatTime(s.CreatedAt, layout))
	line("expires", formatTime(s.ExpiresAt, layout))
	line("size", formatSize(s.StorageSizeBytes))
	line("replica set", deref(s.ReplicaSetName))
	line("mongod version", deref(s.MongodVersion))
	line("master key uuid", deref(s.MasterKeyUUID))
	line("description", deref(s.Description))

	if len(s.SnapshotIDs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, labelStyle.Render("  snapshot ids:"))
		for _, id := range s.SnapshotIDs {
			fmt.Fprintf(w, "    %s\n", infoStyle.Render(id))
		}
	}

	if len(s.Members) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, labelStyle.Render("  members:"))
		for _, m := range s.Members {
			fmt.Fprintf(w, "    %s\n", dimStyle.Render(formatMember(m)))
		}
	}

	if len(s.Links) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, labelStyle.Render("  links:"))
		for _, l := range s.Links {
			fmt.Fprintf(w, "    %s %s\n", dimStyle.Render(l.Rel), infoStyle.Render(l.Href))
		}
	}
	fmt.Fprintln(w)
}

func formatMember(m models.Member) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m[k]))
	}
	return strings.Join(parts, " ")
}
