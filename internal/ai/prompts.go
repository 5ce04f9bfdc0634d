package ai

import (
	"fmt"
	"strings"

	"snakecoach/internal/core"
	"snakecoach/internal/game"
)

// systemPrompt frames every request. The coach speaks simplified Chinese;
// the single-sentence constraints below are prompt hints, enforcement
// happens post-hoc in the extractor.
const systemPrompt = `你是一款终端贪吃蛇游戏的教练。请始终使用简体中文回答，语气轻松友好。除非另有说明，回答保持简短。`

// Fixed placeholder sentences used when the transport fails. Extraction
// failures are handled separately inside the extractor.
const (
	fallbackWelcome   = "欢迎来到贪吃蛇！祝你拿下高分！"
	fallbackEncourage = "吃得好！继续保持！"
)

func welcomePrompt(mode core.Mode) string {
	style := "本局为本地模式，食物随机出现"
	if mode == core.ModeAI {
		style = "本局为 AI 模式，由你来安排食物的位置"
	}
	return fmt.Sprintf("新的一局开始了（%s）。请用一句话欢迎玩家，不超过三十个字。", style)
}

func encouragePrompt(score, survivalSecs int, head core.Position) string {
	return fmt.Sprintf(
		"玩家刚吃到一个食物。当前得分 %d，已坚持 %d 秒，蛇头位于 (%d, %d)。"+
			"请用一句话鼓励玩家，换一种说法，不要重复之前说过的话，不超过三十个字。",
		score, survivalSecs, head.X, head.Y)
}

func placementPrompt(body []core.Position, width, height int) string {
	var coords strings.Builder
	for i, p := range body {
		if i > 0 {
			coords.WriteString(", ")
		}
		fmt.Fprintf(&coords, "(%d,%d)", p.X, p.Y)
	}
	return fmt.Sprintf(
		"贪吃蛇棋盘宽 %d 高 %d，四周一圈是墙。蛇身从头到尾依次占据：%s。"+
			"请为下一个食物挑一个空位，坐标必须满足 0 < X < %d 且 0 < Y < %d，且不能压在蛇身上。"+
			"只回答坐标，格式为 X:数字,Y:数字，不要输出其他内容。",
		width, height, coords.String(), width-1, height-1)
}

func summaryPrompt(rec game.Record) string {
	cause := rec.Cause
	if cause == "" {
		cause = "未知"
	}
	return fmt.Sprintf(
		"本局结束。模式：%s，最终得分 %d，存活 %d 秒，蛇身最长 %d 节，结束原因：%s。"+
			"请先用一两句话简要复盘本局表现，再按重要程度给出两到三条长期改进建议。",
		rec.Mode, rec.Score, rec.SurvivalSecs, rec.MaxLength, cause)
}
