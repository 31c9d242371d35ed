package postgres

// pgUniqueViolation is PostgreSQL's error code for unique constraint violations
const pgUniqueViolation = "23505"

const giveawayColumns = "message_id, channel_id, guild_id, prize, end_time, winner_count, host_id, is_active, created_at"

// Giveaway queries
const (
	sqlCreateGiveaway = `INSERT INTO giveaways (message_id, channel_id, guild_id, prize, end_time, winner_count, host_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	sqlGetGiveaway = `SELECT ` + giveawayColumns + ` FROM giveaways WHERE message_id = $1`

	sqlListActiveGiveaways = `SELECT ` + giveawayColumns + ` FROM giveaways
		WHERE guild_id = $1 AND is_active ORDER BY end_time`

	sqlListDueGiveaways = `SELECT ` + giveawayColumns + ` FROM giveaways
		WHERE is_active AND end_time <= $1 ORDER BY end_time`

	sqlDeactivateIfActive = `UPDATE giveaways SET is_active = FALSE
		WHERE message_id = $1 AND is_active`

	sqlAddEntry = `INSERT INTO entries (giveaway_id, user_id) VALUES ($1, $2)`

	sqlCountEntries = `SELECT COUNT(*) FROM entries WHERE giveaway_id = $1`

	sqlListEntrantIDs = `SELECT user_id FROM entries WHERE giveaway_id = $1 ORDER BY created_at`
)

// Leveling queries
const (
	sqlGetProfile = `SELECT user_id, guild_id, xp, level FROM users
		WHERE guild_id = $1 AND user_id = $2`

	sqlUpsertProfile = `INSERT INTO users (user_id, guild_id, xp, level)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (guild_id, user_id) DO UPDATE SET xp = EXCLUDED.xp, level = EXCLUDED.level`

	sqlGetRank = `SELECT rank FROM (
			SELECT user_id, RANK() OVER (ORDER BY xp DESC) AS rank
			FROM users WHERE guild_id = $1
		) ranked WHERE user_id = $2`

	sqlGetLeaderboard = `SELECT user_id, level, xp FROM users
		WHERE guild_id = $1 ORDER BY xp DESC LIMIT $2`

	sqlIncrementDailyXP = `INSERT INTO daily_xp (guild_id, user_id, date, xp_gain)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (guild_id, user_id, date) DO UPDATE SET xp_gain = daily_xp.xp_gain + EXCLUDED.xp_gain`

	sqlGetDailyTopUser = `SELECT user_id, xp_gain FROM daily_xp
		WHERE guild_id = $1 AND date = $2 ORDER BY xp_gain DESC LIMIT 1`

	sqlResetDailyXP = `DELETE FROM daily_xp WHERE date = $1`
)

// Guild settings queries
const (
	settingsColumns = "guild_id, welcome_channel_id, levelup_channel_id, xp_cooldown_sec, min_xp, max_xp"

	sqlGetGuildSettings = `SELECT ` + settingsColumns + ` FROM guild_settings WHERE guild_id = $1`

	sqlListGuildSettings = `SELECT ` + settingsColumns + ` FROM guild_settings`

	sqlUpsertGuildSettings = `INSERT INTO guild_settings (guild_id, welcome_channel_id, levelup_channel_id, xp_cooldown_sec, min_xp, max_xp)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (guild_id) DO UPDATE SET
			welcome_channel_id = EXCLUDED.welcome_channel_id,
			levelup_channel_id = EXCLUDED.levelup_channel_id,
			xp_cooldown_sec = EXCLUDED.xp_cooldown_sec,
			min_xp = EXCLUDED.min_xp,
			max_xp = EXCLUDED.max_xp`
)
