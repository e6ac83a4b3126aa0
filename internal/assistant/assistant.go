// Package assistant generates the canned chat responses. Dispatch is a
// prioritized rule table: rules are evaluated in order and the first whose
// keyword set matches the message wins. It is a pure function of the
// message text and keeps no memory of earlier turns, so swapping in a real
// NLU backend later only touches this package.
package assistant

import "strings"

// Intents, in evaluation priority order.
const (
	IntentBalanceInquiry     = "balance_inquiry"
	IntentSendMoney          = "send_money"
	IntentTransactionHistory = "transaction_history"
	IntentFallback           = "fallback"
)

type rule struct {
	intent   string
	keywords []string
	response string
}

var rules = []rule{
	{
		intent:   IntentBalanceInquiry,
		keywords: []string{"잔액", "돈"},
		response: "현재 잔액은 2,847,500원입니다. 다른 도움이 필요하시면 말씀해 주세요!",
	},
	{
		intent:   IntentSendMoney,
		keywords: []string{"송금", "보내"},
		response: "송금을 도와드릴게요! 누구에게 얼마를 보내실 건가요?",
	},
	{
		intent:   IntentTransactionHistory,
		keywords: []string{"거래내역"},
		response: "최근 거래내역을 확인해 드릴게요. 거래내역 화면으로 이동할까요?",
	},
}

const fallbackResponse = "죄송합니다. 잘 이해하지 못했어요. 다시 말씀해 주시겠어요?"

// Respond classifies message against the rule table and returns the matched
// intent with its canned response. Unmatched messages get the fallback that
// asks the user to rephrase.
func Respond(message string) (intent, response string) {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(message, kw) {
				return r.intent, r.response
			}
		}
	}
	return IntentFallback, fallbackResponse
}
