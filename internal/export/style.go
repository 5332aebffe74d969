package export

const stylesheet = `
body { background: #0f172a; color: #e2e8f0; font-family: system-ui, sans-serif; margin: 0 auto; max-width: 72rem; padding: 1.5rem; }
h1 { margin: 0 0 .5rem; }
#searchInfo, .result-count { color: #94a3b8; font-size: .875rem; }
#filterContainer { display: flex; flex-wrap: wrap; gap: .5rem; margin: 1rem 0; }
#filterContainer button { background: #1e293b; border: 0; border-radius: .375rem; color: inherit; padding: .25rem .75rem; }
#filterContainer button.active { background: #38bdf8; color: #0f172a; }
.subcategories-label { color: #94a3b8; font-size: .75rem; font-weight: bold; margin-bottom: .5rem; }
.subcategories ul { display: flex; flex-wrap: wrap; gap: .5rem; list-style: none; margin: 0 0 1rem; padding: 0; }
.tag-pill { background: #334155; border-radius: .25rem; font-size: .75rem; font-weight: bold; padding: .25rem .5rem; }
.tag-pill.active, .tag-pill:target { background: #38bdf8; color: #0f172a; }
#wikiGrid { display: grid; gap: 1rem; grid-template-columns: repeat(auto-fill, minmax(18rem, 1fr)); }
.term-card { background: #1e293b; border-left: 4px solid; border-radius: .5rem; padding: 1rem; }
.term-head { align-items: flex-start; display: flex; gap: .5rem; justify-content: space-between; }
.term-head h3 { margin: 0; }
.category-badge { background: #334155; border-radius: .25rem; font-family: monospace; font-size: .75rem; padding: .25rem .5rem; white-space: nowrap; }
.tag-badge { background: #475569; border-radius: .25rem; color: #e2e8f0; font-size: .75rem; padding: .125rem .5rem; text-decoration: none; }
.term-desc { color: #94a3b8; font-size: .875rem; line-height: 1.6; }
.placeholder { color: #94a3b8; grid-column: 1 / -1; padding: 2rem 0; text-align: center; }
`
