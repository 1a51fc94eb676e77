package repository

// 列の等値条件
type Condition struct {
	Column string
	Value  any
}

// Criteria は等値条件の AND
type Criteria struct {
	conds []Condition
}

func Where(column string, value any) Criteria {
	return Criteria{}.And(column, value)
}

func (c Criteria) And(column string, value any) Criteria {
	conds := make([]Condition, 0, len(c.conds)+1)
	conds = append(conds, c.conds...)
	conds = append(conds, Condition{Column: column, Value: value})
	return Criteria{conds: conds}
}

func (c Criteria) Conditions() []Condition {
	return append([]Condition(nil), c.conds...)
}

func (c Criteria) IsEmpty() bool {
	return len(c.conds) == 0
}
