package registry

import "context"

// DoSerializable выполняет fn эксклюзивно относительно других вызовов DoSerializable
// Внутри fn можно вызывать любые методы реестра: отдельные операции по-прежнему атомарны,
// а составная операция "проверить слот, затем записать" не пересекается с другой такой же.
func (r *Registry) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
