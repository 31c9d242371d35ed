package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Giveaway metric names
const (
	MetricNameGiveawaysCreated   = "giveaways_created_total"
	MetricNameGiveawaysFinalized = "giveaways_finalized_total"
	MetricNameGiveawayEntries    = "giveaway_entries_total"
	MetricNameGiveawayRerolls    = "giveaway_rerolls_total"
)

// Leveling metric names
const (
	MetricNameXPAwarded = "xp_awarded_total"
	MetricNameLevelUps  = "level_ups_total"
)

// Command metric names
const (
	MetricNameCommandsHandled = "commands_handled_total"
	MetricNameCommandErrors   = "command_errors_total"
	MetricNameCommandDuration = "command_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Giveaway metric help text
const (
	HelpTextGiveawaysCreated   = "Total number of giveaways created"
	HelpTextGiveawaysFinalized = "Total number of giveaways finalized"
	HelpTextGiveawayEntries    = "Total number of giveaway entry attempts"
	HelpTextGiveawayRerolls    = "Total number of giveaway rerolls"
)

// Leveling metric help text
const (
	HelpTextXPAwarded = "Total XP awarded for chat activity"
	HelpTextLevelUps  = "Total number of member level-ups"
)

// Command metric help text
const (
	HelpTextCommandsHandled = "Total number of slash commands handled"
	HelpTextCommandErrors   = "Total number of slash command failures"
	HelpTextCommandDuration = "Slash command handling latency in seconds"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelGuild   = "guild"
	LabelOutcome = "outcome"
	LabelCommand = "command"
)
