package postgres

func (p *Postgres) Providers() *ProviderRepo { return p.Provider }
func (p *Postgres) Profiles() *ProfileRepo   { return p.Profile }
func (p *Postgres) Requests() *RequestRepo   { return p.Request }
func (p *Postgres) Alerts() *AlertRepo       { return p.Alert }
func (p *Postgres) Stats() *StatsRepo        { return p.Stat }
