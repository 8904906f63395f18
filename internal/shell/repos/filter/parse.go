package filter

import (
	"bufio"
	"strings"

	"github.com/cometbrowser/comet/internal/shell/domain"
)

// AddFilterList parses filter-list text in the EasyList/Adblock Plus subset
// this engine understands and appends the resulting rules, preserving list
// order. Blank lines, '!'-prefixed comments, and '['-prefixed metadata
// headers are ignored. Lines carrying element-hiding syntax are rejected:
// they are not representable as network-level rules.
func (e *Engine) AddFilterList(content string) error {
	scanner := bufio.NewScanner(strings.NewReader(content))

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "!") || strings.HasPrefix(line, "[") {
			continue
		}

		if raw, ok := strings.CutPrefix(line, "@@"); ok {
			if rule, ok := parseRule(raw, false); ok {
				e.exceptionRules = append(e.exceptionRules, rule)
			} else {
				e.logger.Debug(map[string]any{"line": lineNum}, "skipped unsupported exception rule")
			}
			continue
		}

		if rule, ok := parseRule(line, true); ok {
			e.blockRules = append(e.blockRules, rule)
		} else {
			e.logger.Debug(map[string]any{"line": lineNum}, "skipped unsupported rule")
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	e.stats.FilterCount = len(e.blockRules) + len(e.exceptionRules)
	e.cache.purge()

	e.logger.Info(map[string]any{
		"block":     len(e.blockRules),
		"exception": len(e.exceptionRules),
	}, "filter list loaded")
	return nil
}

// resource-type option names, as they appear in $-option suffixes. Unlike
// request classification, unknown option tokens are ignored rather than
// mapped to Other.
var optionResourceTypes = map[string]domain.ResourceType{
	"script":         domain.ResourceScript,
	"image":          domain.ResourceImage,
	"stylesheet":     domain.ResourceStylesheet,
	"font":           domain.ResourceFont,
	"media":          domain.ResourceMedia,
	"xmlhttprequest": domain.ResourceXHR,
	"subdocument":    domain.ResourceSubdocument,
	"websocket":      domain.ResourceWebSocket,
}

// parseRule compiles one filter line (exception marker already stripped)
// into a FilterRule. Returns false for element-hiding rules.
func parseRule(raw string, isBlock bool) (domain.FilterRule, bool) {
	if strings.Contains(raw, "##") || strings.Contains(raw, "#@#") {
		return domain.FilterRule{}, false
	}

	pattern := raw
	var options string
	if idx := strings.LastIndexByte(raw, '$'); idx >= 0 {
		pattern, options = raw[:idx], raw[idx+1:]
	}

	// A trailing '^' is the separator anchor; at end of pattern it only
	// asserts a boundary, so it is dropped for substring matching.
	pattern = strings.TrimSuffix(pattern, "^")

	rule := domain.FilterRule{
		Pattern:       pattern,
		IsBlock:       isBlock,
		ResourceTypes: make(map[domain.ResourceType]struct{}),
		Domains:       make(map[string]struct{}),
	}

	if options != "" {
		for _, opt := range strings.Split(options, ",") {
			opt = strings.TrimSpace(opt)
			switch {
			case opt == "third-party":
				rule.ThirdPartyOnly = true
			case strings.HasPrefix(opt, "domain="):
				// The '~' exclusion marker is normalized away; negative
				// domain matching is not implemented.
				for _, d := range strings.Split(opt[len("domain="):], "|") {
					d = strings.TrimPrefix(strings.TrimSpace(d), "~")
					if d != "" {
						rule.Domains[d] = struct{}{}
					}
				}
			default:
				if rt, ok := optionResourceTypes[opt]; ok {
					rule.ResourceTypes[rt] = struct{}{}
				}
			}
		}
	}

	return rule, true
}
