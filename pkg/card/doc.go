// Package card implements the content validation and presentation-state
// model behind the cardgen renderers.
//
// Validate classifies a title/description pair into a Verdict with a
// canonical diagnostic message. Resolve maps an Input plus its Verdict to a
// State describing which layout to render (normal content or the validation
// alert) and the effective variant/size/status to style it with. Both are
// pure functions; Card wraps them into a live instance that notifies an
// optional observer whenever the verdict changes between passes.
//
// Validation is advisory. An invalid verdict only switches the layout when
// the caller opts in through Input.ShowValidation; otherwise the content
// renders normally and the verdict is still reported to observers.
package card
