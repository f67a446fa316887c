package ftui

import "strings"

type MenuItem struct {
	Title   string
	HotKeys []string
	Action  func()
}

// HintText renders items as a one line key hint bar.
func HintText(items []MenuItem) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString("[yellow]" + strings.Join(item.HotKeys, "/") + "[-] " + item.Title)
	}
	return sb.String()
}
