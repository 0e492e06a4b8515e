package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type seedAsset struct {
	userID    int64
	assetType string
	symbol    string
	name      string
	quantity  float64
	avgPrice  float64
	sector    string
}

type seedGoal struct {
	title   string
	target  float64
	current float64
	kind    string
}

type seedAchievement struct {
	title       string
	description string
	icon        string
}

var (
	demoAssets = []seedAsset{
		{1, "stock", "GAZP", "Газпром", 100, 124.5, "Энергетика"},
		{1, "fund", "S&P500", "iShares Core S&P 500", 10, 4500, "Финансы"},
		{1, "bond", "ОФЗ 26238", "ОФЗ 26238", 50, 780, "Госдолг"},
	}

	demoGoals = []seedGoal{
		{"Диверсификация по секторам: соберите активы из 5 различных отраслей экономики для снижения рисков.", 5, 3, "sectors_count"},
		{"Финансовая независимость: капитал в 1 000 000 ₽ как важная веха на пути к долгосрочным планам.", 1000000, 450000, "portfolio_value"},
		{"Дисциплина эмоций: заполните дневник настроения 10 раз, чтобы лучше понимать связь между чувствами и сделками.", 10, 4, "streak"},
	}

	demoAchievements = []seedAchievement{
		{"Первый шаг к успеху", "Вы успешно добавили свой самый первый актив в портфель. Поздравляем с началом инвестиционного пути!", "🌱"},
		{"Мастер осознанности", "Вы проявили завидную дисциплину и заполнили 7 дневников эмоций подряд. Это поможет вам избежать импульсивных решений.", "🧘"},
		{"Хладнокровный аналитик", "Вы провели глубокий анализ сделки в момент высокой волатильности рынка и сохранили спокойствие.", "❄️"},
	}
)

// Seed inserts the demo users and their starter data. Every section is only
// written when its table is still empty, so Seed is safe to run on each start.
func Seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().UTC().Format(TimeLayout)

	for _, u := range []struct {
		id   int64
		name string
	}{{1, "VibeUser"}, {2, "SmartInvestor"}} {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO users (id, username, created_at) VALUES (?, ?, ?)`,
			u.id, u.name, now,
		); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.name, err)
		}
	}

	empty, err := isEmpty(ctx, tx, `SELECT COUNT(*) FROM portfolio_assets WHERE user_id = 1`)
	if err != nil {
		return err
	}
	if empty {
		for _, a := range demoAssets {
			if err := insertSeedAsset(ctx, tx, a, now); err != nil {
				return err
			}
		}
	}

	empty, err = isEmpty(ctx, tx, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return err
	}
	if empty {
		posts := []struct {
			userID     int64
			content    string
			tradeShare bool
		}{
			{1, "Сегодня решил увеличить долю в облигациях. Рынок кажется перегретым, лучше немного переждать в защитных активах. 🛡️", false},
			{1, "Докупил Газпром на просадке. Верю в дивиденды! 🤑", true},
		}
		for _, p := range posts {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO posts (user_id, content, is_trade_share, created_at) VALUES (?, ?, ?, ?)`,
				p.userID, p.content, p.tradeShare, now,
			); err != nil {
				return fmt.Errorf("failed to seed post: %w", err)
			}
		}
	}

	empty, err = isEmpty(ctx, tx, `SELECT COUNT(*) FROM anxiety_logs`)
	if err != nil {
		return err
	}
	if empty {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO anxiety_logs (user_id, level, event, created_at) VALUES (?, ?, ?, ?)`,
			1, 3, "Спокойное начало недели", now,
		); err != nil {
			return fmt.Errorf("failed to seed anxiety log: %w", err)
		}
	}

	empty, err = isEmpty(ctx, tx, `SELECT COUNT(*) FROM posts WHERE user_id = 2`)
	if err != nil {
		return err
	}
	if empty {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO posts (user_id, content, is_trade_share, created_at) VALUES (?, ?, 0, ?)`,
			2, "Анализирую рынок биотехов. Кажется, там назревает что-то интересное... 🧬", now,
		); err != nil {
			return fmt.Errorf("failed to seed post: %w", err)
		}
		if err := insertSeedAsset(ctx, tx, seedAsset{2, "stock", "PFE", "Pfizer Inc.", 50, 28.5, "Здравоохранение"}, now); err != nil {
			return err
		}
	}

	empty, err = isEmpty(ctx, tx, `SELECT COUNT(*) FROM goals`)
	if err != nil {
		return err
	}
	if empty {
		for _, g := range demoGoals {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO goals (user_id, title, target_value, current_value, type, is_completed, created_at)
				VALUES (1, ?, ?, ?, ?, 0, ?)`,
				g.title, g.target, g.current, g.kind, now,
			); err != nil {
				return fmt.Errorf("failed to seed goal: %w", err)
			}
		}
	}

	empty, err = isEmpty(ctx, tx, `SELECT COUNT(*) FROM achievements`)
	if err != nil {
		return err
	}
	if empty {
		for _, a := range demoAchievements {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO achievements (user_id, title, description, icon, unlocked_at) VALUES (1, ?, ?, ?, ?)`,
				a.title, a.description, a.icon, now,
			); err != nil {
				return fmt.Errorf("failed to seed achievement: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed data: %w", err)
	}
	return nil
}

func insertSeedAsset(ctx context.Context, tx *sql.Tx, a seedAsset, now string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO portfolio_assets (user_id, type, symbol, name, quantity, avg_price, sector, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.userID, a.assetType, a.symbol, a.name, a.quantity, a.avgPrice, a.sector, now,
	)
	if err != nil {
		return fmt.Errorf("failed to seed asset %s: %w", a.symbol, err)
	}
	return nil
}

func isEmpty(ctx context.Context, tx *sql.Tx, query string) (bool, error) {
	var count int
	if err := tx.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count seed rows: %w", err)
	}
	return count == 0, nil
}
