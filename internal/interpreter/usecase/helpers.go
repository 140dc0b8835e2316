package usecase

import (
	"context"

	"schedule-interpreter/internal/model"
)

// pushPatches forwards the date changes between two versions to the sink.
// Sink errors are logged and otherwise ignored.
func (uc *implUseCase) pushPatches(ctx context.Context, sc model.Scope, before, after model.Document) {
	if uc.sink == nil {
		return
	}
	patches := model.Diff(before, after)
	if len(patches) == 0 {
		return
	}
	if err := uc.sink.PushPatches(ctx, patches); err != nil {
		uc.l.Warnf(ctx, "%s: session=%s failed to push %d patches: %v", LogPrefixPushPatches, sc.SessionID, len(patches), err)
	}
}
