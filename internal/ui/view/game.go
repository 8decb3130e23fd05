// Package view provides UI rendering functions.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/landlord-engine/internal/ui/common"
)

// RenderGameRules renders the game rules.
func RenderGameRules() string {
	var sb strings.Builder

	sb.WriteString("【游戏目标】\n")
	sb.WriteString("地主：先出完手中所有牌\n")
	sb.WriteString("农民：任意一个农民先出完牌，则农民方获胜\n\n")

	sb.WriteString("【牌型说明】\n")
	sb.WriteString("• 单牌：一张牌，或 5 的倍数张连续的牌（顺子）\n")
	sb.WriteString("• 对子：一对，或三对及以上连续的对子（连对）\n")
	sb.WriteString("• 三张：两个或更多连续的三张（飞机）\n")
	sb.WriteString("• 三带一：三张 + 单牌\n")
	sb.WriteString("• 三带二：三张 + 对子\n")
	sb.WriteString("• 炸弹：四张点数相同的牌（可炸除王炸外的任何牌型）\n")
	sb.WriteString("• 四带二：四张 + 两张单牌\n")
	sb.WriteString("• 四带两对：四张 + 两个对子\n")
	sb.WriteString("• 王炸：大王 + 小王（最大的牌型）\n")
	sb.WriteString("• 2 和王不能出现在顺子、连对和飞机中\n\n")

	sb.WriteString("【叫地主规则】\n")
	sb.WriteString("1. 发牌后每位玩家依次选择是否抢地主\n")
	sb.WriteString("2. 只有一人抢地主，该玩家成为地主\n")
	sb.WriteString("3. 多人抢地主时进入第二轮，最后抢地主的玩家成为地主\n")
	sb.WriteString("4. 无人抢地主则重新发牌\n")
	sb.WriteString("5. 地主获得3张底牌，共20张牌；农民各17张牌\n\n")

	sb.WriteString("【出牌规则】\n")
	sb.WriteString("1. 地主先出牌\n")
	sb.WriteString("2. 后续玩家必须出相同牌型、相同张数且更大的牌，或选择PASS\n")
	sb.WriteString("3. 如果都PASS，则最后出牌的玩家可以出任意牌型\n\n")

	sb.WriteString("【操作】\n")
	sb.WriteString("• y / n：抢地主 / 不抢\n")
	sb.WriteString("• 输入点数出牌，如 334、10JQKA、JOKER\n")
	sb.WriteString("• pass：要不起\n")
	sb.WriteString("• r：游戏结束后重新开始\n")
	sb.WriteString("• c：显示/隐藏记牌器\n")
	sb.WriteString("• h：显示/隐藏帮助\n")
	sb.WriteString("• ESC：退出\n")

	return common.BoxStyle.Render(sb.String())
}

// RulesView renders the full rules view.
func RulesView(width, height int) string {
	var sb strings.Builder

	title := common.TitleStyle("📖 游戏规则")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderGameRules()))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "再次输入 h 返回游戏"))

	return sb.String()
}
